package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smessmer/git-feature/internal/actions"
	gferrors "github.com/smessmer/git-feature/internal/errors"
)

func TestRemoveLocalAndRemote(t *testing.T) {
	fake := newFakeService()
	fake.localBranches["myfeature"] = true
	fake.remoteBranches["myfeature"] = true
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"delete-local myfeature force=false",
		"delete-remote origin myfeature",
	}, fake.calls)
	assert.False(t, fake.localBranches["myfeature"])
	assert.False(t, fake.remoteBranches["myfeature"])
}

func TestRemoveDetachesWhenCheckedOut(t *testing.T) {
	fake := newFakeService()
	fake.localBranches["myfeature"] = true
	fake.current = "myfeature"
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"detach upstream/main",
		"delete-local myfeature force=false",
	}, fake.calls)
}

func TestRemoveLocalOnly(t *testing.T) {
	fake := newFakeService()
	fake.localBranches["myfeature"] = true
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete-local myfeature force=false"}, fake.calls)
}

func TestRemoveRemoteOnly(t *testing.T) {
	fake := newFakeService()
	fake.remoteBranches["myfeature"] = true
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete-remote origin myfeature"}, fake.calls)
}

func TestRemoveNowhere(t *testing.T) {
	fake := newFakeService()
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	assert.ErrorIs(t, err, gferrors.ErrBranchNotFound)
	assert.Empty(t, fake.calls)
}

func TestRemoveForce(t *testing.T) {
	fake := newFakeService()
	fake.localBranches["myfeature"] = true
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true, Force: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete-local myfeature force=true"}, fake.calls)
}

func TestRemovePartialFailure(t *testing.T) {
	fake := newFakeService()
	fake.localBranches["myfeature"] = true
	fake.remoteBranches["myfeature"] = true
	fake.deleteRemoteErr = gferrors.NewRemoteUnavailableError("origin", errors.New("connection refused"))
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})

	// The local half succeeded and the error says so
	var partial *gferrors.PartialRemovalError
	require.ErrorAs(t, err, &partial)
	assert.True(t, partial.LocalDeleted)
	assert.False(t, partial.RemoteDeleted)
	assert.ErrorIs(t, err, gferrors.ErrRemoteUnavailable)
	assert.False(t, fake.localBranches["myfeature"])
	assert.True(t, fake.remoteBranches["myfeature"])
}

func TestRemoveLocalDeleteFails(t *testing.T) {
	fake := newFakeService()
	fake.localBranches["myfeature"] = true
	fake.remoteBranches["myfeature"] = true
	fake.deleteLocalErr = errors.New("branch is not fully merged")
	rctx := newTestContext(fake)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.Error(t, err)

	// Nothing was partially deleted, and the remote half was never attempted
	var partial *gferrors.PartialRemovalError
	assert.False(t, errors.As(err, &partial))
	assert.NotContains(t, fake.calls, "delete-remote origin myfeature")
	assert.True(t, fake.remoteBranches["myfeature"])
}

func TestCreateRemoveRoundTrip(t *testing.T) {
	fake := newFakeService()
	rctx := newTestContext(fake)

	err := actions.Create(context.Background(), rctx, actions.CreateOptions{BranchName: "myfeature"})
	require.NoError(t, err)
	require.True(t, fake.localBranches["myfeature"])
	require.True(t, fake.remoteBranches["myfeature"])

	err = actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.NoError(t, err)

	// Branch-existence state is back to what it was before create
	assert.False(t, fake.localBranches["myfeature"])
	assert.False(t, fake.remoteBranches["myfeature"])
}
