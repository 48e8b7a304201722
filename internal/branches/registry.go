package branches

import "strings"

// Branch is one entry of the static branch registry. The subdomain doubles
// as the branch identifier on the central API (`branch_id`) and as the
// hostname prefix of the per-branch tunnel.
type Branch struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

func (b Branch) ID() string {
	return b.Subdomain
}

// Registry resolves URL path segments to branches. It is built once from
// config at startup and injected where needed.
type Registry struct {
	branches []Branch
}

func NewRegistry(list []Branch) *Registry {
	return &Registry{branches: list}
}

// Resolve matches a branch by name, case-insensitively.
func (r *Registry) Resolve(name string) (Branch, bool) {
	for _, b := range r.branches {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Branch{}, false
}

func (r *Registry) All() []Branch {
	out := make([]Branch, len(r.branches))
	copy(out, r.branches)
	return out
}
