package summation

// Input represents sumAsString operands
type Input struct {
	A uint64 `json:"a" yaml:"a"`
	B uint64 `json:"b" yaml:"b"`
}

// Output represents the formatted sum
type Output struct {
	Value string `json:"value" yaml:"value"`
}
