package datapoints

// Wrap re-attaches the type and metadata of like to a raw kernel output.
//
// With a nil like, value is returned unchanged. Otherwise the result is a new
// value of like's type backed by value's storage (no copy), with every field
// declared by the type copied from like. value may itself be a datapoint, in
// which case only its storage is used.
func Wrap(value any, like Datapoint) (any, error) {
	if like == nil {
		return value, nil
	}
	raw, err := StorageOf(value)
	if err != nil {
		return nil, err
	}
	return like.Type().New(raw, like.Metadata())
}
