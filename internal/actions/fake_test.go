package actions_test

import (
	"context"
	"fmt"

	"github.com/smessmer/git-feature/internal/config"
	"github.com/smessmer/git-feature/internal/git"
	"github.com/smessmer/git-feature/internal/output"
	"github.com/smessmer/git-feature/internal/runtime"
)

// fakeService is an in-memory git.Service for controller tests. It tracks
// branch existence state and records every call in order.
type fakeService struct {
	localBranches  map[string]bool
	remoteBranches map[string]bool // branches on origin
	current        string

	calls []string

	fetchErr        error
	rebaseErr       error
	pushErr         error
	deleteLocalErr  error
	deleteRemoteErr error
}

var _ git.Service = (*fakeService)(nil)

func newFakeService() *fakeService {
	return &fakeService{
		localBranches:  map[string]bool{"main": true},
		remoteBranches: map[string]bool{"main": true},
		current:        "main",
	}
}

func (f *fakeService) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeService) FetchRemote(_ context.Context, remote string) error {
	f.record("fetch %s", remote)
	return f.fetchErr
}

func (f *fakeService) CreateBranch(_ context.Context, name, startPoint string) error {
	f.record("create %s %s", name, startPoint)
	f.localBranches[name] = true
	f.current = name
	return nil
}

func (f *fakeService) CheckoutBranch(_ context.Context, name string) error {
	f.record("checkout %s", name)
	if !f.localBranches[name] {
		return fmt.Errorf("no such branch %s", name)
	}
	f.current = name
	return nil
}

func (f *fakeService) CheckoutDetached(_ context.Context, rev string) error {
	f.record("detach %s", rev)
	f.current = ""
	return nil
}

func (f *fakeService) RebaseOnto(_ context.Context, branch, onto string) error {
	f.record("rebase %s onto %s", branch, onto)
	return f.rebaseErr
}

func (f *fakeService) PushBranch(_ context.Context, remote, branch string, _ git.PushOptions) error {
	f.record("push %s %s", remote, branch)
	if f.pushErr != nil {
		return f.pushErr
	}
	f.remoteBranches[branch] = true
	return nil
}

func (f *fakeService) DeleteLocalBranch(_ context.Context, name string, force bool) error {
	f.record("delete-local %s force=%v", name, force)
	if f.deleteLocalErr != nil {
		return f.deleteLocalErr
	}
	delete(f.localBranches, name)
	return nil
}

func (f *fakeService) DeleteRemoteBranch(_ context.Context, remote, name string) error {
	f.record("delete-remote %s %s", remote, name)
	if f.deleteRemoteErr != nil {
		return f.deleteRemoteErr
	}
	delete(f.remoteBranches, name)
	return nil
}

func (f *fakeService) LocalBranchExists(_ context.Context, name string) (bool, error) {
	return f.localBranches[name], nil
}

func (f *fakeService) RemoteBranchExists(_ context.Context, _, name string) (bool, error) {
	return f.remoteBranches[name], nil
}

func (f *fakeService) CurrentBranch(_ context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeService) SyncSubmodules(_ context.Context) error {
	f.record("submodules")
	return nil
}

// newTestContext builds a runtime context around a fake service
func newTestContext(fake *fakeService) *runtime.Context {
	return &runtime.Context{
		Git:         fake,
		Config:      config.Default(),
		Splog:       output.NewSplog(),
		Project:     &config.Project{Owner: "onnx", Repo: "onnx"},
		OriginOwner: "some-user",
	}
}
