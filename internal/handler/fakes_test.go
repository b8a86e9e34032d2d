package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeContent struct {
	landing   *models.LandingView
	dashboard *models.DashboardView
	projects  []models.Project
	err       error

	lastWho    models.Identity
	lastStatus string
}

func (f *fakeContent) Landing(ctx context.Context) *models.LandingView { return f.landing }

func (f *fakeContent) Dashboard(ctx context.Context, who models.Identity) *models.DashboardView {
	f.lastWho = who
	view := *f.dashboard
	view.Identity = who
	return &view
}

func (f *fakeContent) ListProjects(ctx context.Context) ([]models.Project, error) {
	return f.projects, f.err
}

func (f *fakeContent) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return []models.Skill{}, f.err
}

func (f *fakeContent) ListAbout(ctx context.Context) ([]models.AboutEntry, error) {
	return []models.AboutEntry{}, f.err
}

func (f *fakeContent) ListContacts(ctx context.Context, status string) ([]models.ContactSubmission, error) {
	f.lastStatus = status
	return []models.ContactSubmission{}, f.err
}

// fakeProjects records the last call and returns a canned result.
type fakeProjects struct {
	result services.Result

	calls   int
	lastWho models.Identity
	lastID  string
	lastIn  *services.ProjectInput
}

func (f *fakeProjects) CreateProject(ctx context.Context, who models.Identity, in *services.ProjectInput) services.Result {
	f.calls++
	f.lastWho, f.lastIn = who, in
	return f.result
}

func (f *fakeProjects) UpdateProject(ctx context.Context, who models.Identity, id string, in *services.ProjectInput) services.Result {
	f.calls++
	f.lastWho, f.lastID, f.lastIn = who, id, in
	return f.result
}

func (f *fakeProjects) DeleteProject(ctx context.Context, who models.Identity, id string) services.Result {
	f.calls++
	f.lastWho, f.lastID = who, id
	return f.result
}

type fakeSkills struct {
	result services.Result
	lastIn *services.SkillInput
}

func (f *fakeSkills) CreateSkill(ctx context.Context, who models.Identity, in *services.SkillInput) services.Result {
	f.lastIn = in
	return f.result
}

func (f *fakeSkills) UpdateSkill(ctx context.Context, who models.Identity, id string, in *services.SkillInput) services.Result {
	f.lastIn = in
	return f.result
}

func (f *fakeSkills) DeleteSkill(ctx context.Context, who models.Identity, id string) services.Result {
	return f.result
}

type fakeAbout struct {
	result services.Result
	lastIn *services.AboutInput
}

func (f *fakeAbout) CreateAbout(ctx context.Context, who models.Identity, in *services.AboutInput) services.Result {
	f.lastIn = in
	return f.result
}

func (f *fakeAbout) UpdateAbout(ctx context.Context, who models.Identity, id string, in *services.AboutInput) services.Result {
	f.lastIn = in
	return f.result
}

func (f *fakeAbout) DeleteAbout(ctx context.Context, who models.Identity, id string) services.Result {
	return f.result
}

type fakeContacts struct {
	result services.Result
	lastIn *services.ContactInput
}

func (f *fakeContacts) SubmitContact(ctx context.Context, in *services.ContactInput) services.Result {
	f.lastIn = in
	return f.result
}

type fakeAccounts struct {
	session   *models.AuthSession
	identity  models.Identity
	signInErr error
	signUpErr error
	signOut   []string
}

func (f *fakeAccounts) SignIn(ctx context.Context, req *services.SignInRequest) (*models.AuthSession, error) {
	return f.session, f.signInErr
}

func (f *fakeAccounts) SignUp(ctx context.Context, req *services.SignUpRequest) error {
	return f.signUpErr
}

func (f *fakeAccounts) SignOut(ctx context.Context, accessToken string) error {
	f.signOut = append(f.signOut, accessToken)
	return nil
}

func (f *fakeAccounts) CurrentIdentity(ctx context.Context, accessToken string) (models.Identity, error) {
	return f.identity, nil
}

type fakeSessions struct {
	saved   *models.AuthSession
	cleared bool
}

func (f *fakeSessions) Save(w http.ResponseWriter, r *http.Request, sess *models.AuthSession) error {
	f.saved = sess
	return nil
}

func (f *fakeSessions) Clear(w http.ResponseWriter, r *http.Request) error {
	f.cleared = true
	return nil
}
