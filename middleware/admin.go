package middleware

import (
	"context"
	"net/http"
	"time"

	"toolbase/db"
	"toolbase/globals"
	"toolbase/models"
	"toolbase/rdx"
	"toolbase/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// LookupRole resolves the stored role for an email. Package variable so
// tests can stub the store away.
var LookupRole = lookupRole

func lookupRole(ctx context.Context, email string) (string, error) {
	// role changes are rare; a short cache keeps admin-gated routes off Mongo
	if role, ok := rdx.Get("role:" + email); ok {
		return role, nil
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", err
	}

	rdx.Set("role:"+email, user.Role, 2*time.Minute)
	return user.Role, nil
}

// RequireAdmin lets a request through only when the caller's stored user
// document carries role "admin". The role is read from the store, not from
// the token, so a revoked admin loses access without reissuing tokens.
// Must run after Authenticate.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email, _ := r.Context().Value(globals.EmailKey).(string)
		if email == "" {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		role, err := LookupRole(ctx, email)
		if err != nil || role != "admin" {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), globals.RoleKey, role)), ps)
	}
}
