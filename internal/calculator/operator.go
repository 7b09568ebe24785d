package calculator

// Operator selects the arithmetic operation applied to the two operands.
type Operator rune

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

// Valid reports whether o is one of + - * /.
func (o Operator) Valid() bool {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

func (o Operator) String() string {
	return string(rune(o))
}

// Label is the metrics label for o. Unsupported operators share one label.
func (o Operator) Label() string {
	if !o.Valid() {
		return "other"
	}
	return o.String()
}
