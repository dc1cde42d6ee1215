package mockapi

import (
	"net/http"
	"strings"

	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/httputil"
)

// ContentTypeJSON rejects POST and PUT requests whose body is not JSON.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
				err := apperrors.Validation("Content-Type must be application/json")
				err.Status = http.StatusUnsupportedMediaType
				httputil.WriteError(w, r, err, nil)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
