package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/studentsapi/internal/client/models"
	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/filex"
	"github.com/dmitrijs2005/studentsapi/internal/netx"
)

// exportDir is where downloaded exports land, relative to the working directory.
const exportDir = "exports"

// downloadFn is a test seam for netx.DownloadPresignedURL.
var downloadFn = netx.DownloadPresignedURL

// studentPrompts lists the editable attributes in prompt order.
var studentPrompts = []struct{ key, label string }{
	{"firstname", "First name"},
	{"lastname", "Last name"},
	{"email", "Email"},
	{"address", "Address"},
	{"score", "Score"},
}

func (a *App) fail(err error) error {
	fmt.Fprintf(a.out, "Error: %s\n", err)
	return err
}

func (a *App) printStudent(s *models.Student) {
	fmt.Fprintf(a.out, "ID:         %s\n", s.ID)
	fmt.Fprintf(a.out, "First name: %s\n", s.Firstname)
	fmt.Fprintf(a.out, "Last name:  %s\n", s.Lastname)
	fmt.Fprintf(a.out, "Email:      %s\n", s.Email)
	fmt.Fprintf(a.out, "Address:    %s\n", s.Address)
	fmt.Fprintf(a.out, "Score:      %g\n", s.Score)
	fmt.Fprintf(a.out, "Created:    %s\n", s.CreatedAt)
	fmt.Fprintf(a.out, "Updated:    %s\n", s.UpdatedAt)
}

// readFields prompts for every attribute. With keepEmpty an empty answer
// leaves the attribute out; otherwise it is sent as given.
func (a *App) readFields(keepEmpty bool) (map[string]any, error) {
	fields := make(map[string]any, len(studentPrompts))
	for _, p := range studentPrompts {
		label := p.label
		if keepEmpty {
			label += " (empty to keep)"
		}
		v, err := GetSimpleText(a.reader, label, a.out)
		if err != nil {
			return nil, err
		}
		if v == "" && keepEmpty {
			continue
		}
		if p.key != "score" {
			fields[p.key] = v
			continue
		}
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: score must be a number", common.ErrorValidation)
		}
		fields[p.key] = score
	}
	return fields, nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		return a.fail(err)
	}

	a.email = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	if !a.client.LoggedIn() {
		a.email = ""
	}
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, common.LogoutMessage)
	return nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.client.ListStudents(ctx)
	if err != nil {
		return a.fail(err)
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No students")
		return nil
	}
	for _, s := range list {
		fmt.Fprintln(a.out, s)
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	s, err := a.client.GetStudent(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.printStudent(s)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	fields, err := a.readFields(false)
	if err != nil {
		return a.fail(err)
	}

	s, err := a.client.CreateStudent(ctx, fields)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Student %s created\n", s.ID)
	return nil
}

func (a *App) Update(ctx context.Context, id string) error {
	fields, err := a.readFields(true)
	if err != nil {
		return a.fail(err)
	}

	s, err := a.client.UpdateStudent(ctx, id, fields)
	if err != nil {
		return a.fail(err)
	}
	a.printStudent(s)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	s, err := a.client.DeleteStudent(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Student %s deleted\n", s.ID)
	return nil
}

func (a *App) Export(ctx context.Context) error {
	e, err := a.client.ExportStudents(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Export uploaded: %s\n", e.Key)
	fmt.Fprintf(a.out, "Download (valid 15 minutes): %s\n", e.URL)

	data, err := downloadFn(ctx, e.URL)
	if err != nil {
		return a.fail(err)
	}
	path, err := filex.SaveInSubdir(exportDir, e.Key, data)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Saved to %s\n", path)
	return nil
}
