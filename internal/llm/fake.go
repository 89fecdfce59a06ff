package llm

import "context"

// Fake is a scripted model for tests. Each Generate call consumes the next
// scripted response; an empty string in the script yields ErrEmptyResponse
// and a non-nil Err short-circuits every call.
type Fake struct {
	Responses []string
	Err       error
	Calls     []string
	next      int
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	f.Calls = append(f.Calls, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	if f.next >= len(f.Responses) {
		return "", ErrEmptyResponse
	}
	r := f.Responses[f.next]
	f.next++
	if r == "" {
		return "", ErrEmptyResponse
	}
	return r, nil
}
