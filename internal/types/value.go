package types

// Value is the template payload of a single parameter. Continuous values
// carry one or more floats (a scalar is a vector of length one); discrete
// values carry the raw leaf text untouched.
type Value struct {
	Kind   VariableKind
	Floats []float64
	Raw    string
}

// Scalar wraps a single float as a continuous value.
func Scalar(v float64) Value {
	return Value{Kind: KindContinuous, Floats: []float64{v}}
}

// Vector wraps a float slice as a continuous value.
func Vector(vs []float64) Value {
	return Value{Kind: KindContinuous, Floats: vs}
}

// Discrete wraps raw text as a discrete value.
func Discrete(raw string) Value {
	return Value{Kind: KindDiscrete, Raw: raw}
}

func (v Value) IsContinuous() bool {
	return v.Kind == KindContinuous
}

// Mean returns the scalar value itself, or the arithmetic mean for vectors.
// Discrete and empty values yield zero.
func (v Value) Mean() float64 {
	if !v.IsContinuous() || len(v.Floats) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range v.Floats {
		sum += f
	}
	return sum / float64(len(v.Floats))
}

// NormalizationRef is the reference value handed to the framework when a
// continuous output slot is declared. An exact-zero mean is substituted
// by one so downstream normalization never divides by zero.
func (v Value) NormalizationRef() float64 {
	ref := v.Mean()
	if ref == 0 {
		return 1
	}
	return ref
}

// ParamValue pairs a flat parameter name with its template value,
// preserving the order the parameter appeared in its XML template.
type ParamValue struct {
	Name  string
	Value Value
}

// Leaf pairs a leaf element's XPath with the value parsed from its text.
type Leaf struct {
	XPath string
	Value Value
}
