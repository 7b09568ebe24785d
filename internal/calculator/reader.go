package calculator

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	calcerrors "calc/internal/errors"
)

// MaxTokenLen is the longest operand token, in runes, that Read accepts.
const MaxTokenLen = 4096

// Request is one parsed "<op> <num1> <num2>" input.
type Request struct {
	Op    Operator
	Left  float64
	Right float64
}

// Read consumes an operator and two operands from r.
//
// The operator is the first non-space character; the first operand may
// follow it directly, so "+3 4" and "+ 3 4" read the same. Operands are
// whitespace-delimited tokens parsed with strconv.ParseFloat. Input after
// the second operand is left unread.
func Read(r io.Reader) (Request, error) {
	br, ok := r.(io.RuneScanner)
	if !ok {
		br = bufio.NewReader(r)
	}

	var req Request

	op, err := readOperator(br)
	if err != nil {
		return req, err
	}
	req.Op = op

	if req.Left, err = readOperand(br, "left"); err != nil {
		return req, err
	}
	if req.Right, err = readOperand(br, "right"); err != nil {
		return req, err
	}
	return req, nil
}

func readOperator(r io.RuneScanner) (Operator, error) {
	if err := skipSpace(r); err != nil {
		return 0, inputErr("operator", "", err)
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return 0, inputErr("operator", "", err)
	}
	return Operator(ch), nil
}

func readOperand(r io.RuneScanner, field string) (float64, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, inputErr(field, tok, err)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Out-of-range values parse to ±Inf, which is still a number.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, calcerrors.NewInputError(field, tok, err)
	}
	return v, nil
}

func skipSpace(r io.RuneScanner) error {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(ch) {
			return r.UnreadRune()
		}
	}
}

func readToken(r io.RuneScanner) (string, error) {
	if err := skipSpace(r); err != nil {
		return "", err
	}
	var sb strings.Builder
	for n := 0; ; n++ {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sb.String(), err
		}
		if unicode.IsSpace(ch) {
			r.UnreadRune()
			break
		}
		if n == MaxTokenLen {
			return sb.String(), calcerrors.ErrTokenTooLong
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

func inputErr(field, tok string, err error) error {
	if err == io.EOF {
		err = calcerrors.ErrMissingToken
	}
	return calcerrors.NewInputError(field, tok, err)
}
