package domain

import "github.com/supabase-community/supabase-go"

// SupabaseClient wraps the Supabase SDK. Repositories obtain token-scoped
// clients so row-level security applies to every query.
type SupabaseClient interface {
	Initialize() error
	ValidateToken(token string) (*SupabaseUser, error)

	DB() *supabase.Client
	GetClientWithToken(token string) (*supabase.Client, error)
}
