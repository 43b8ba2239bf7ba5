package calc

// Add returns x + y.
func Add(x, y float64) float64 {
	return x + y
}

// Sum adds the operands. Two finite operands can still overflow to ±Inf;
// the result is returned as is.
func (o Operands) Sum() float64 {
	return Add(o.X, o.Y)
}
