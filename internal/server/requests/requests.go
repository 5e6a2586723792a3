// Package requests decodes and validates the payloads accepted by the
// transports. Input arrives as a generic map (from a protobuf Struct or a
// JSON body); every failure is reported as common.ErrorValidation.
package requests

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/types/known/structpb"
)

var validate = validator.New()

// stringRule applies to every textual student attribute.
const stringRule = "min=1,max=255"

type LoginRequest struct {
	Email    string `validate:"required,max=255"`
	Password string `validate:"required"`
}

type CreateStudentRequest struct {
	Firstname string   `validate:"required,max=255"`
	Lastname  string   `validate:"required,max=255"`
	Email     string   `validate:"required,max=255,contains=@"`
	Address   string   `validate:"required,max=255"`
	Score     *float64 `validate:"required"`
}

// Fields converts the request into a full StudentFields.
func (r *CreateStudentRequest) Fields() models.StudentFields {
	return models.StudentFields{
		Firstname: &r.Firstname,
		Lastname:  &r.Lastname,
		Email:     &r.Email,
		Address:   &r.Address,
		Score:     r.Score,
	}
}

type UpdateStudentRequest struct {
	ID     int64 `validate:"required,gt=0"`
	Fields models.StudentFields
}

type StudentIDRequest struct {
	ID int64 `validate:"required,gt=0"`
}

// FromStruct returns the Go map form of s; nil gives an empty map.
func FromStruct(s *structpb.Struct) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return s.AsMap()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrorValidation}, args...)...)
}

// structError renders validator errors as one message.
func structError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return invalid("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), rule(fe)))
	}
	return invalid("%s", strings.Join(msgs, "; "))
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func optString(m map[string]any, key string) (*string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	if v == nil {
		return nil, invalid("%s must not be null", key)
	}
	s, ok := v.(string)
	if !ok {
		return nil, invalid("%s must be a string", key)
	}
	return &s, nil
}

func optNumber(m map[string]any, key string) (*float64, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	if v == nil {
		return nil, invalid("%s must not be null", key)
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, invalid("%s must be a number", key)
		}
		return &f, nil
	default:
		return nil, invalid("%s must be a number", key)
	}
}

// parseID accepts a JSON number or a decimal string holding a positive integer.
func parseID(m map[string]any) (int64, error) {
	v, ok := m["id"]
	if !ok || v == nil {
		return 0, invalid("id is required")
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n < 1 || n >= math.MaxInt64 {
			return 0, invalid("id must be a positive integer")
		}
		return int64(n), nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil || id < 1 {
			return 0, invalid("id must be a positive integer")
		}
		return id, nil
	default:
		return 0, invalid("id must be a positive integer")
	}
}

func rejectUnknown(m map[string]any, allowed ...string) error {
	var unknown []string
	for k := range m {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return invalid("unknown fields: %s", strings.Join(unknown, ", "))
}

func DecodeLogin(m map[string]any) (*LoginRequest, error) {
	email, err := optString(m, "email")
	if err != nil {
		return nil, err
	}
	password, err := optString(m, "password")
	if err != nil {
		return nil, err
	}

	r := &LoginRequest{}
	if email != nil {
		r.Email = *email
	}
	if password != nil {
		r.Password = *password
	}
	if err := validate.Struct(r); err != nil {
		return nil, structError(err)
	}
	return r, nil
}

type studentAttrs struct {
	firstname, lastname, email, address *string
	score                               *float64
}

func decodeAttrs(m map[string]any) (*studentAttrs, error) {
	a := &studentAttrs{}
	var err error
	for _, f := range []struct {
		key string
		dst **string
	}{
		{"firstname", &a.firstname},
		{"lastname", &a.lastname},
		{"email", &a.email},
		{"address", &a.address},
	} {
		if *f.dst, err = optString(m, f.key); err != nil {
			return nil, err
		}
	}
	if a.score, err = optNumber(m, "score"); err != nil {
		return nil, err
	}
	return a, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func DecodeCreateStudent(m map[string]any) (*CreateStudentRequest, error) {
	a, err := decodeAttrs(m)
	if err != nil {
		return nil, err
	}

	r := &CreateStudentRequest{
		Firstname: deref(a.firstname),
		Lastname:  deref(a.lastname),
		Email:     deref(a.email),
		Address:   deref(a.address),
		Score:     a.score,
	}
	if err := validate.Struct(r); err != nil {
		return nil, structError(err)
	}
	return r, nil
}

// DecodeUpdateStudent requires id and accepts any subset of the student
// attributes. Keys outside that set are rejected.
func DecodeUpdateStudent(m map[string]any) (*UpdateStudentRequest, error) {
	if err := rejectUnknown(m, "id", "firstname", "lastname", "email", "address", "score"); err != nil {
		return nil, err
	}

	id, err := parseID(m)
	if err != nil {
		return nil, err
	}

	a, err := decodeAttrs(m)
	if err != nil {
		return nil, err
	}

	checks := []struct {
		name  string
		value *string
		rule  string
	}{
		{"firstname", a.firstname, stringRule},
		{"lastname", a.lastname, stringRule},
		{"email", a.email, stringRule + ",contains=@"},
		{"address", a.address, stringRule},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := validate.Var(*c.value, c.rule); err != nil {
			return nil, invalid("%s failed %s", c.name, c.rule)
		}
	}

	r := &UpdateStudentRequest{
		ID: id,
		Fields: models.StudentFields{
			Firstname: a.firstname,
			Lastname:  a.lastname,
			Email:     a.email,
			Address:   a.address,
			Score:     a.score,
		},
	}
	if err := validate.Struct(r); err != nil {
		return nil, structError(err)
	}
	return r, nil
}

func DecodeStudentID(m map[string]any) (*StudentIDRequest, error) {
	id, err := parseID(m)
	if err != nil {
		return nil, err
	}
	r := &StudentIDRequest{ID: id}
	if err := validate.Struct(r); err != nil {
		return nil, structError(err)
	}
	return r, nil
}
