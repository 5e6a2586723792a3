package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/studentsapi/internal/client/models"
	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token string

	list    []*models.Student
	student *models.Student
	export  *models.Export
	err     error

	gotEmail, gotPassword, gotID string
	gotFields                    map[string]any
	closed                       bool
}

func (f *fakeClient) Close() error   { f.closed = true; return nil }
func (f *fakeClient) LoggedIn() bool { return f.token != "" }
func (f *fakeClient) Ping(context.Context) error {
	return nil
}
func (f *fakeClient) Login(_ context.Context, email, password string) error {
	f.gotEmail, f.gotPassword = email, password
	if f.err != nil {
		return f.err
	}
	f.token = "tok"
	return nil
}
func (f *fakeClient) Logout(context.Context) error {
	f.token = ""
	return f.err
}
func (f *fakeClient) ListStudents(context.Context) ([]*models.Student, error) {
	return f.list, f.err
}
func (f *fakeClient) GetStudent(_ context.Context, id string) (*models.Student, error) {
	f.gotID = id
	return f.student, f.err
}
func (f *fakeClient) CreateStudent(_ context.Context, fields map[string]any) (*models.Student, error) {
	f.gotFields = fields
	return f.student, f.err
}
func (f *fakeClient) UpdateStudent(_ context.Context, id string, fields map[string]any) (*models.Student, error) {
	f.gotID, f.gotFields = id, fields
	return f.student, f.err
}
func (f *fakeClient) DeleteStudent(_ context.Context, id string) (*models.Student, error) {
	f.gotID = id
	return f.student, f.err
}
func (f *fakeClient) ExportStudents(context.Context) (*models.Export, error) {
	return f.export, f.err
}

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{client: fc, reader: rdr(input), out: &out}, &out
}

func sample() *models.Student {
	return &models.Student{ID: "1", Firstname: "a", Lastname: "b", Email: "c@d", Address: "e", Score: 5}
}

func TestLogin_Command(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }

	fc := &fakeClient{}
	app, out := newTestApp(fc, "a@a\n")
	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "a@a", fc.gotEmail)
	assert.Equal(t, "pw", fc.gotPassword)
	assert.Contains(t, out.String(), "Login successful")
	assert.Equal(t, "(a@a) ", app.getStatus())

	fc = &fakeClient{err: common.ErrorUnauthorized}
	app, out = newTestApp(fc, "a@a\n")
	require.ErrorIs(t, app.Login(context.Background()), common.ErrorUnauthorized)
	assert.Contains(t, out.String(), "Error: Unauthorized (401)")
	assert.Equal(t, "", app.getStatus())
}

func TestLogout_Command(t *testing.T) {
	fc := &fakeClient{token: "tok"}
	app, out := newTestApp(fc, "")
	app.email = "a@a"

	require.NoError(t, app.Logout(context.Background()))
	assert.Contains(t, out.String(), "successfully log out")
	assert.Empty(t, app.email)

	fc.err = common.ErrorUnauthorized
	require.Error(t, app.Logout(context.Background()))
	assert.Contains(t, out.String(), "Error: Unauthorized (401)")
}

func TestList_Command(t *testing.T) {
	fc := &fakeClient{list: []*models.Student{sample()}}
	app, out := newTestApp(fc, "")
	require.NoError(t, app.List(context.Background()))
	assert.Contains(t, out.String(), "1\ta b\tc@d\te\t5")

	fc.list = []*models.Student{}
	out.Reset()
	require.NoError(t, app.List(context.Background()))
	assert.Equal(t, "No students\n", out.String())
}

func TestShow_Command(t *testing.T) {
	fc := &fakeClient{student: sample()}
	app, out := newTestApp(fc, "")
	require.NoError(t, app.Show(context.Background(), "1"))
	assert.Equal(t, "1", fc.gotID)
	assert.Contains(t, out.String(), "Email:      c@d")

	fc.err = common.ErrorNotFound
	require.ErrorIs(t, app.Show(context.Background(), "9"), common.ErrorNotFound)
	assert.Contains(t, out.String(), "Error: Not Found (404)")
}

func TestAdd_Command(t *testing.T) {
	fc := &fakeClient{student: sample()}
	app, out := newTestApp(fc, "a\nb\nc@d\ne\n5\n")
	require.NoError(t, app.Add(context.Background()))
	assert.Equal(t, map[string]any{
		"firstname": "a", "lastname": "b", "email": "c@d", "address": "e", "score": 5.0,
	}, fc.gotFields)
	assert.Contains(t, out.String(), "Student 1 created")

	fc.gotFields = nil
	app, out = newTestApp(fc, "a\nb\nc@d\ne\nfive\n")
	require.ErrorIs(t, app.Add(context.Background()), common.ErrorValidation)
	assert.Nil(t, fc.gotFields)
	assert.Contains(t, out.String(), "score must be a number")

	fc.err = common.ErrorConflict
	app, out = newTestApp(fc, "a\nb\nc@d\ne\n5\n")
	require.ErrorIs(t, app.Add(context.Background()), common.ErrorConflict)
	assert.Contains(t, out.String(), "Error: Conflict (409)")
}

func TestUpdate_Command_EmptyKeeps(t *testing.T) {
	fc := &fakeClient{student: sample()}
	app, out := newTestApp(fc, "f\n\n\n\n\n")
	require.NoError(t, app.Update(context.Background(), "1"))
	assert.Equal(t, "1", fc.gotID)
	assert.Equal(t, map[string]any{"firstname": "f"}, fc.gotFields)
	assert.True(t, strings.Contains(out.String(), "(empty to keep)"))
}

func TestDelete_Command(t *testing.T) {
	fc := &fakeClient{student: sample()}
	app, out := newTestApp(fc, "")
	require.NoError(t, app.Delete(context.Background(), "1"))
	assert.Contains(t, out.String(), "Student 1 deleted")
}

func TestExport_Command_DownloadsIntoExportDir(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	defer ts.Close()

	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	fc := &fakeClient{export: &models.Export{Key: "exports/2024/05/01/k.json", URL: ts.URL + "/k.json?sig=1"}}
	app, out := newTestApp(fc, "")
	require.NoError(t, app.Export(context.Background()))
	assert.Contains(t, out.String(), "exports/2024/05/01/k.json")
	assert.Contains(t, out.String(), ts.URL)

	data, err := os.ReadFile(filepath.Join(tmp, "exports", "k.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestExport_Command_DownloadFailure(t *testing.T) {
	old := downloadFn
	t.Cleanup(func() { downloadFn = old })
	downloadFn = func(context.Context, string) ([]byte, error) { return nil, errors.New("download failed: 403 Forbidden") }

	fc := &fakeClient{export: &models.Export{Key: "exports/k.json", URL: "http://u"}}
	app, out := newTestApp(fc, "")
	require.Error(t, app.Export(context.Background()))
	assert.Contains(t, out.String(), "Error: download failed: 403 Forbidden")
}

func TestRun_EndsOnEOFAndClosesClient(t *testing.T) {
	fc := &fakeClient{}
	app, out := newTestApp(fc, "help\n")
	app.Run(context.Background())
	assert.True(t, fc.closed)
	assert.Contains(t, out.String(), "Welcome to the students CLI")
	assert.Contains(t, out.String(), "Available commands: login, exit")
}
