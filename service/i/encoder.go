package i

// Encoder converts persisted values to and from bytes.
type Encoder interface {
	// Name is the short format name, e.g. "json".
	Name() string
	// ContentType is the MIME type of the encoded form.
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}
