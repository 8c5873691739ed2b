package vybiumrescue

import (
	"fmt"

	"github.com/rs/zerolog"
)

// digest is any fixed-size collaborator output the pipeline can measure
type digest interface {
	~[]byte | ~[]FieldElement
}

// Pipeline is the parse -> invoke -> encode shape shared by every entry
// point. Parse failures never reach Invoke, and a digest whose length is
// not DigestSize never reaches Encode.
type Pipeline[In, Vec any, D digest, Out any] struct {
	Name       string
	Parse      func(In) (Vec, error)
	Invoke     func(Vec) D
	DigestSize int
	Encode     func(D) (Out, error)

	Log *zerolog.Logger
}

// Run executes the pipeline on one input.
func (p *Pipeline[In, Vec, D, Out]) Run(in In) (out Out, err error) {
	defer reportPanic(p.Log, p.Name)

	vec, err := p.Parse(in)
	if err != nil {
		return out, classify(p.Name, err)
	}

	d := p.Invoke(vec)
	if len(d) != p.DigestSize {
		return out, newError(ErrInternalInvariant, p.Name,
			fmt.Sprintf("expected digest of %d but received %d", p.DigestSize, len(d)), nil)
	}

	out, err = p.Encode(d)
	if err != nil {
		var zero Out
		return zero, classify(p.Name, err)
	}

	if p.Log != nil {
		p.Log.Debug().Str("op", p.Name).Int("digest_size", len(d)).Msg("hashed")
	}
	return out, nil
}
