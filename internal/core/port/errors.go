package port

import "errors"

// Sentinel errors crossing the usecase boundary. The HTTP adapter maps
// each of these onto a status code and response body.
var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignInactive   = errors.New("campaign is not active")
	ErrDuplicateClick     = errors.New("already clicked this campaign today")
	ErrBudgetExceeded     = errors.New("campaign daily budget exceeded")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRateLimited        = errors.New("too many attempts")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError marks rejected caller input. The HTTP adapter maps it
// to 400 with the message as the response body.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

