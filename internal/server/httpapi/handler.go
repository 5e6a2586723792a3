package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/requests"
)

// maxBodyBytes bounds login payloads.
const maxBodyBytes = 1 << 20

var kindStatus = map[error]int{
	common.ErrorUnauthorized: http.StatusUnauthorized,
	common.ErrorNotFound:     http.StatusNotFound,
	common.ErrorConflict:     http.StatusConflict,
	common.ErrorValidation:   http.StatusUnprocessableEntity,
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "encode response", "error", err.Error())
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := common.Kind(err)
	code, ok := kindStatus[kind]
	if !ok {
		s.logger.Error(ctx, "internal error", "error", err.Error())
		s.writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"message": common.ErrorInternal.Error()})
		return
	}

	msg := kind.Error()
	if errors.Is(kind, common.ErrorValidation) {
		msg = err.Error()
	}
	s.writeJSON(ctx, w, code, map[string]string{"message": msg})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		s.writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", common.ErrorValidation))
		return
	}

	in, err := requests.DecodeLogin(body)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	res, err := s.sessions.Login(ctx, in.Email, in.Password)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusCreated, map[string]string{
		"access_token": res.Token,
		"token_type":   res.TokenType,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := common.ParseBearer(r.Header.Get(common.AuthorizationHeaderName))
	if err := s.sessions.Logout(ctx, token); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, map[string]string{"message": common.LogoutMessage})
}
