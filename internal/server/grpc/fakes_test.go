package grpc

import (
	"context"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/dmitrijs2005/studentsapi/internal/server/services"
)

type fakeSessions struct {
	loginResp *services.LoginResult
	loginErr  error
	logoutErr error

	// validToken authenticates as user; anything else is unauthorized.
	validToken string
	user       *models.User

	gotEmail, gotPassword, gotLogoutToken string
}

func (f *fakeSessions) Login(_ context.Context, email, password string) (*services.LoginResult, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.loginResp, f.loginErr
}

func (f *fakeSessions) Logout(_ context.Context, token string) error {
	f.gotLogoutToken = token
	return f.logoutErr
}

func (f *fakeSessions) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == "" || token != f.validToken {
		return nil, common.ErrorUnauthorized
	}
	return f.user, nil
}

type fakeStudents struct {
	one    *models.Student
	all    []*models.Student
	err    error
	gotID  int64
	gotF   models.StudentFields
	called string
}

func (f *fakeStudents) FindOne(_ context.Context, id int64) (*models.Student, error) {
	f.called, f.gotID = "FindOne", id
	return f.one, f.err
}

func (f *fakeStudents) FindAll(context.Context) ([]*models.Student, error) {
	f.called = "FindAll"
	return f.all, f.err
}

func (f *fakeStudents) Create(_ context.Context, fl models.StudentFields) (*models.Student, error) {
	f.called, f.gotF = "Create", fl
	return f.one, f.err
}

func (f *fakeStudents) Update(_ context.Context, id int64, fl models.StudentFields) (*models.Student, error) {
	f.called, f.gotID, f.gotF = "Update", id, fl
	return f.one, f.err
}

func (f *fakeStudents) Delete(_ context.Context, id int64) (*models.Student, error) {
	f.called, f.gotID = "Delete", id
	return f.one, f.err
}

type fakeExports struct {
	res *services.ExportResult
	err error
}

func (f *fakeExports) Export(context.Context) (*services.ExportResult, error) { return f.res, f.err }
