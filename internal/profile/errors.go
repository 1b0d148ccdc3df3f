package profile

import "errors"

// ErrEmptyProfile rejects profiles with neither skills nor experience;
// such a profile cannot drive matching and never reaches an agent.
var ErrEmptyProfile = errors.New("profile has no skills and no experience")
