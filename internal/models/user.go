package models

import (
	"github.com/google/uuid"
)

// LocalUser is the user every request of this instance is scoped to.
//
// The schema is multi-tenant: every resource carries a UserID column and all
// queries filter on it. This instance serves exactly one household, so the
// ID is derived deterministically instead of being managed via an account
// system. Serving more users is a matter of resolving a different ID per
// request, not of changing the schema.
var LocalUser = uuid.NewSHA1(uuid.NameSpaceOID, []byte("PersonalFinanceTracker"))
