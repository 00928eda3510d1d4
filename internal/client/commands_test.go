// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

var testBuild = models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123")

// notesAPI is a minimal REST remote keyed by note id.
type notesAPI struct {
	mu    sync.Mutex
	notes map[string]models.Note
}

func newNotesAPI(t *testing.T) (*notesAPI, *httptest.Server) {
	t.Helper()
	api := &notesAPI{notes: make(map[string]models.Note)}

	r := chi.NewRouter()
	r.Route("/api/notes", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(api.all())
		})
		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			var n models.Note
			if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
				http.Error(w, "bad note", http.StatusBadRequest)
				return
			}
			api.mu.Lock()
			api.notes[chi.URLParam(r, "id")] = n
			api.mu.Unlock()
		})
		r.Patch("/{id}", func(w http.ResponseWriter, r *http.Request) {
			var fields map[string]json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
				http.Error(w, "bad patch", http.StatusBadRequest)
				return
			}
			api.mu.Lock()
			defer api.mu.Unlock()
			n, ok := api.notes[chi.URLParam(r, "id")]
			if !ok {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			raw, _ := json.Marshal(n)
			var merged map[string]json.RawMessage
			_ = json.Unmarshal(raw, &merged)
			for k, v := range fields {
				merged[k] = v
			}
			raw, _ = json.Marshal(merged)
			_ = json.Unmarshal(raw, &n)
			api.notes[n.ID] = n
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			api.mu.Lock()
			delete(api.notes, chi.URLParam(r, "id"))
			api.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *notesAPI) all() []models.Note {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Note, 0, len(a.notes))
	for _, n := range a.notes {
		out = append(out, n)
	}
	return out
}

func (a *notesAPI) get(id string) (models.Note, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n, ok := a.notes[id]
	return n, ok
}

// closedAddr returns a local address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

// cliEnv runs the real command tree against a sqlite file in a temp dir.
type cliEnv struct {
	t       *testing.T
	dir     string
	address string
	factory Factory
}

func newCLIEnv(t *testing.T, address string) *cliEnv {
	return &cliEnv{t: t, dir: t.TempDir(), address: address, factory: defaultFactory}
}

func (e *cliEnv) baseArgs() []string {
	return []string{
		"--db", filepath.Join(e.dir, "notes.db"),
		"--address", e.address,
		"--log-file", filepath.Join(e.dir, "logs", "client.log"),
		"--request-timeout", "2s",
	}
}

func (e *cliEnv) exec(stdin string, extra []string, args ...string) (string, error) {
	e.t.Helper()
	root := newRootCommand(testBuild, e.factory)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(append(args, e.baseArgs()...), extra...))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

// online runs a command with the probe pointed at the API itself.
func (e *cliEnv) online(args ...string) (string, error) {
	e.t.Helper()
	return e.exec("", nil, args...)
}

// offline runs a command with an unreachable probe address.
func (e *cliEnv) offline(args ...string) (string, error) {
	e.t.Helper()
	return e.exec("", []string{"--probe-address", closedAddr(e.t)}, args...)
}

func decodeJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), s)
	return v
}

func TestCLI_AddOnlineReachesRemote(t *testing.T) {
	api, srv := newNotesAPI(t)
	env := newCLIEnv(t, srv.URL)

	out, err := env.exec("# Groceries\n\n- milk\n", nil, "add", "-", "--tag", "Home,errands", "-o", "json")
	require.NoError(t, err)
	note := decodeJSON[models.Note](t, out)

	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, models.FolderMain, note.Folder)
	assert.Equal(t, models.GuestOwner, note.UserID)
	assert.NotEmpty(t, note.ID)

	remote, ok := api.get(note.ID)
	require.True(t, ok, "create must be replayed while online")
	assert.Equal(t, note.Content, remote.Content)

	out, err = env.online("status", "-o", "json")
	require.NoError(t, err)
	st := decodeJSON[models.SyncStatus](t, out)
	assert.True(t, st.Online)
	assert.Zero(t, st.QueueLength)
	assert.Equal(t, models.SyncIdleOnlineEmpty, st.State)

	out, err = env.online("list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, note.ID)
	assert.Contains(t, out, "Groceries")

	out, err = env.online("show", note.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "- milk")
}

func TestCLI_OfflineChangesAreSentOnSync(t *testing.T) {
	api, srv := newNotesAPI(t)
	env := newCLIEnv(t, srv.URL)

	out, err := env.offline("add", "first", "note", "-o", "json")
	require.NoError(t, err)
	first := decodeJSON[models.Note](t, out)

	out, err = env.offline("add", "second", "--title", "Second", "-o", "json")
	require.NoError(t, err)
	second := decodeJSON[models.Note](t, out)

	_, err = env.offline("edit", second.ID, "--title", "Second v2")
	require.NoError(t, err)

	assert.Empty(t, api.all(), "nothing reaches the remote while offline")

	out, err = env.offline("status", "-o", "json")
	require.NoError(t, err)
	st := decodeJSON[models.SyncStatus](t, out)
	assert.False(t, st.Online)
	assert.Equal(t, 3, st.QueueLength)
	assert.Equal(t, models.SyncIdleOffline, st.State)

	// без сети sync ничего не отправляет
	out, err = env.offline("sync")
	require.NoError(t, err)
	assert.Equal(t, "sent 0, dropped 0, remaining 3, reconciled false\n", out)

	// очередь пережила перезапуск процесса
	out, err = env.online("sync")
	require.NoError(t, err)
	assert.Equal(t, "sent 3, dropped 0, remaining 0, reconciled true\n", out)

	_, ok := api.get(first.ID)
	assert.True(t, ok)
	remote, ok := api.get(second.ID)
	require.True(t, ok)
	assert.Equal(t, "Second v2", remote.Title)

	out, err = env.online("status")
	require.NoError(t, err)
	assert.Contains(t, out, "pending: 0")
	assert.Contains(t, out, "online:  true")
}

func TestCLI_EditPinFolderAndDelete(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")

	out, err := env.offline("add", "plan", "--title", "Plan", "--folder", "Work", "-o", "json")
	require.NoError(t, err)
	id := decodeJSON[models.Note](t, out).ID

	out, err = env.offline("edit", id, "--title", "Plan B", "--tag", "q3,team", "--remind", "2030-01-02T10:00:00Z", "-o", "json")
	require.NoError(t, err)
	edited := decodeJSON[models.Note](t, out)
	assert.Equal(t, "Plan B", edited.Title)
	assert.Equal(t, []string{"q3", "team"}, edited.Tags)
	require.NotNil(t, edited.ReminderAt)

	out, err = env.offline("edit", id, "--clear-reminder", "-o", "json")
	require.NoError(t, err)
	assert.Nil(t, decodeJSON[models.Note](t, out).ReminderAt)

	out, err = env.offline("pin", id)
	require.NoError(t, err)
	assert.Equal(t, "pinned "+id+"\n", out)

	out, err = env.offline("pin", id)
	require.NoError(t, err)
	assert.Equal(t, "unpinned "+id+"\n", out)

	out, err = env.offline("archive", id)
	require.NoError(t, err)
	assert.Equal(t, "archived "+id+"\n", out)

	out, err = env.offline("list", "--group")
	require.NoError(t, err)
	assert.Contains(t, out, "Archived (1)")
	assert.Contains(t, out, "Pinned (0)")

	out, err = env.offline("folder", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{models.FolderMain, models.FolderTrash, "Work"}, decodeJSON[[]string](t, out))

	out, err = env.offline("folder", "rename", "Work", "Home")
	require.NoError(t, err)
	assert.Equal(t, "renamed Work to Home\n", out)

	out, err = env.offline("list", "--folder", "Home", "-o", "json")
	require.NoError(t, err)
	listed := decodeJSON[[]models.Note](t, out)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].ID)

	out, err = env.offline("tags")
	require.NoError(t, err)
	assert.Equal(t, "q3\nteam\n", out)

	out, err = env.offline("rm", id)
	require.NoError(t, err)
	assert.Equal(t, "trashed "+id+"\n", out)

	out, err = env.offline("list", "-o", "json")
	require.NoError(t, err)
	assert.Empty(t, decodeJSON[[]models.Note](t, out), "trash is hidden without a folder filter")

	out, err = env.offline("rm", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", out)

	_, err = env.offline("show", id)
	require.ErrorIs(t, err, service.ErrNoteNotFound)
}

func TestCLI_FolderErrors(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")

	_, err := env.offline("folder", "rm", models.FolderMain)
	require.ErrorIs(t, err, service.ErrProtectedFolder)

	_, err = env.offline("folder", "rename", "Nowhere", "Work")
	require.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestCLI_DupSearchAndReminders(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")

	restore := nowFunc
	nowFunc = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = restore })

	out, err := env.offline("add", "call", "the", "vet", "--title", "Vet", "--remind", "2030-01-05T09:00:00Z", "-o", "json")
	require.NoError(t, err)
	id := decodeJSON[models.Note](t, out).ID

	out, err = env.offline("dup", id, "-o", "json")
	require.NoError(t, err)
	dup := decodeJSON[models.Note](t, out)
	assert.NotEqual(t, id, dup.ID)
	assert.Equal(t, "Vet (copy)", dup.Title)

	out, err = env.offline("search", "vt", "-o", "json")
	require.NoError(t, err)
	assert.Len(t, decodeJSON[[]models.Note](t, out), 2)

	out, err = env.offline("reminders", "-o", "json")
	require.NoError(t, err)
	assert.Len(t, decodeJSON[[]models.Note](t, out), 2)

	out, err = env.offline("show", id, "--preview", "8")
	require.NoError(t, err)
	assert.Equal(t, "call...\n", out)
}

func TestCLI_InputErrors(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown output",
			args:    []string{"list", "-o", "xml"},
			wantErr: ErrUnknownOutput,
		},
		{
			name:    "unknown sort",
			args:    []string{"list", "--sort", "size"},
			wantMsg: "unknown sort",
		},
		{
			name:    "bad reminder",
			args:    []string{"add", "x", "--remind", "tomorrow"},
			wantMsg: "invalid time",
		},
		{
			name:    "unknown patch field",
			args:    []string{"edit", "some-id", "--patch", `{"colour":"red"}`},
			wantMsg: "decode note patch",
		},
		{
			name:    "missing note",
			args:    []string{"edit", "some-id", "--title", "x"},
			wantErr: service.ErrNoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.offline(tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCLI_Version(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")
	env.factory = func(context.Context, *config.ClientConfig, models.AppBuildInfo, *logger.Logger) (Client, error) {
		t.Fatal("version must not open the client")
		return nil, nil
	}

	out, err := env.exec("", nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2026-10-01\nBuild commit: abc123\n", out)

	out, err = env.exec("", nil, "version", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "version: v1.2.3")
	assert.Contains(t, out, "commit: abc123")

	root := newRootCommand(models.NewAppBuildInfo("", "", ""), env.factory)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Build version: N/A")
}

// stubClient wraps a mocked NotesService.
type stubClient struct {
	notes    service.NotesService
	closed   bool
	migrated bool
}

func (c *stubClient) Notes() service.NotesService { return c.notes }

func (c *stubClient) Watch(ctx context.Context, out io.Writer) error {
	_, err := io.WriteString(out, "watching\n")
	return err
}

func (c *stubClient) Migrate(context.Context) error {
	c.migrated = true
	return nil
}

func (c *stubClient) Close() error {
	c.closed = true
	return nil
}

func newStubEnv(t *testing.T) (*cliEnv, *mock.MockNotesService, *stubClient) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesService(ctrl)
	client := &stubClient{notes: notes}

	env := newCLIEnv(t, "http://127.0.0.1:1")
	env.factory = func(context.Context, *config.ClientConfig, models.AppBuildInfo, *logger.Logger) (Client, error) {
		return client, nil
	}
	return env, notes, client
}

func TestCLI_EditMergesPatchAndFlags(t *testing.T) {
	env, notes, client := newStubEnv(t)

	var got models.NotePatch
	notes.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p models.NotePatch) models.Result {
			got = p
			return models.Success()
		})
	notes.EXPECT().Get("id-1").Return(models.Note{ID: "id-1", Title: "From flag"}, nil)

	_, err := env.exec("", nil, "edit", "id-1", "--patch", `{"title":"From patch","is_pinned":true}`, "--title", "From flag")
	require.NoError(t, err)
	assert.True(t, client.closed)

	require.NotNil(t, got.Title)
	assert.Equal(t, "From flag", *got.Title, "flags override the patch")
	require.NotNil(t, got.IsPinned)
	assert.True(t, *got.IsPinned)
	assert.Nil(t, got.Content)
	assert.False(t, got.ClearReminder)
}

func TestCLI_SyncPrintsReportOnError(t *testing.T) {
	env, notes, _ := newStubEnv(t)
	boom := errors.New("reconcile: remote unavailable")

	notes.EXPECT().Sync(gomock.Any()).Return(models.DrainReport{Sent: 1, Remaining: 0}, boom)

	out, err := env.exec("", nil, "sync")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "sent 1, dropped 0, remaining 0, reconciled false\n", out)
}

func TestCLI_WatchAndMigrateUseClient(t *testing.T) {
	env, _, client := newStubEnv(t)

	out, err := env.exec("", nil, "watch")
	require.NoError(t, err)
	assert.Equal(t, "watching\n", out)

	out, err = env.exec("", nil, "migrate")
	require.NoError(t, err)
	assert.True(t, client.migrated)
	assert.Equal(t, "remote schema is up to date\n", out)
}

func TestCLI_FactoryErrorIsReturned(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")
	boom := errors.New("open storage")
	env.factory = func(context.Context, *config.ClientConfig, models.AppBuildInfo, *logger.Logger) (Client, error) {
		return nil, boom
	}

	_, err := env.exec("", nil, "tags")
	require.ErrorIs(t, err, boom)
}

func TestCLI_InvalidConfig(t *testing.T) {
	env := newCLIEnv(t, "http://127.0.0.1:1")
	env.factory = func(context.Context, *config.ClientConfig, models.AppBuildInfo, *logger.Logger) (Client, error) {
		t.Fatal("factory must not run with an invalid config")
		return nil, nil
	}

	_, err := env.exec("", nil, "tags", "--adapter", "ftp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
