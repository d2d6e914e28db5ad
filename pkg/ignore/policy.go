// Package ignore decides which paths a traversal suppresses. It layers
// per-directory .gitignore files, the repository exclude file, the global
// git excludes file, and hidden-entry suppression behind a single policy
// switch.
package ignore

// Policy is the caller-facing toggle. The four underlying layers are
// always flipped together: turning the policy off must be a complete
// bypass, not a partial one.
type Policy struct {
	RespectGitignore bool
}

// Layers is the resolved form of a Policy, one flag per suppression
// source. Resolve is the only place the coupling between the flags lives.
type Layers struct {
	Gitignore         bool
	GitExclude        bool
	GitGlobal         bool
	HiddenSuppression bool
}

// Resolve expands the policy into its layers.
func (p Policy) Resolve() Layers {
	return Layers{
		Gitignore:         p.RespectGitignore,
		GitExclude:        p.RespectGitignore,
		GitGlobal:         p.RespectGitignore,
		HiddenSuppression: p.RespectGitignore,
	}
}
