package domain

import "errors"

// ErrCampaignNotFound is the only failure a match request surfaces to the
// client. A campaign with zero matching designers is not an error.
var ErrCampaignNotFound = errors.New("campaign not found")
