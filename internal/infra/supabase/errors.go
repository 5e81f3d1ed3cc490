package supabase

import "errors"

var (
	ErrExecute = errors.New("supabase.store: request failed")
	ErrDecode  = errors.New("supabase.store: failed to decode response")
)
