package adapter

import "github.com/gowebpki/jcs"

// JCS defines an interface for RFC 8785 canonicalization to enable mocking
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

// RealJCS implements JCS using the gowebpki/jcs package
type RealJCS struct{}

// NewJCS creates a new real JCS implementation
func NewJCS() JCS {
	return &RealJCS{}
}

func (j *RealJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

// CanonicalJSON marshals v and canonicalizes the result so equal values always hash the same
func CanonicalJSON(js JSON, c JCS, v any) ([]byte, error) {
	data, err := js.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.Transform(data)
}
