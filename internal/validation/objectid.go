package validation

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/apierrors"
)

const MsgInvalidObjectID = "ObjectId passed is invalid"

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidateObjectID trims raw and checks the exact 24-hex-digit format before
// the value reaches any lookup.
func ValidateObjectID(raw string) (primitive.ObjectID, *apierrors.ErrorResponse) {
	trimmed := strings.TrimSpace(raw)
	if !objectIDPattern.MatchString(trimmed) {
		return primitive.NilObjectID, apierrors.Validation(MsgInvalidObjectID)
	}
	id, err := primitive.ObjectIDFromHex(strings.ToLower(trimmed))
	if err != nil {
		return primitive.NilObjectID, apierrors.Validation(MsgInvalidObjectID)
	}
	return id, nil
}
