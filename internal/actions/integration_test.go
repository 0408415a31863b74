package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smessmer/git-feature/internal/actions"
	"github.com/smessmer/git-feature/internal/config"
	gferrors "github.com/smessmer/git-feature/internal/errors"
	"github.com/smessmer/git-feature/internal/git"
	"github.com/smessmer/git-feature/internal/output"
	"github.com/smessmer/git-feature/internal/runtime"
	"github.com/smessmer/git-feature/testhelpers"
)

// newSceneContext builds a runtime context driving a real repository fixture
func newSceneContext(scene *testhelpers.Scene) *runtime.Context {
	return &runtime.Context{
		Git:      git.NewCLIService(scene.Dir),
		Config:   config.Default(),
		Splog:    output.NewSplog(),
		RepoRoot: scene.Dir,
	}
}

func TestFeatureBranchLifecycle(t *testing.T) {
	scene := testhelpers.NewScene(t)
	rctx := newSceneContext(scene)
	ctx := context.Background()

	// create: branch exists locally, is checked out, and its tip equals the
	// upstream mainline tip
	err := actions.Create(ctx, rctx, actions.CreateOptions{BranchName: "myfeature"})
	require.NoError(t, err)

	assert.True(t, scene.Repo.BranchExists("myfeature"))
	current, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	assert.Equal(t, "myfeature", current)

	branchTip, err := scene.Repo.RevParse("myfeature")
	require.NoError(t, err)
	upstreamTip, err := scene.Repo.RevParse("upstream/main")
	require.NoError(t, err)
	assert.Equal(t, upstreamTip, branchTip)

	// push: origin has the branch at the local tip
	require.NoError(t, scene.Repo.CreateChangeAndCommit("change", "my change"))
	err = actions.Push(ctx, rctx, actions.PushOptions{BranchName: "myfeature"})
	require.NoError(t, err)

	assert.True(t, scene.Repo.RemoteBranchExists("origin", "myfeature"))
	localTip, err := scene.Repo.RevParse("myfeature")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.Fetch("origin"))
	remoteTip, err := scene.Repo.RevParse("origin/myfeature")
	require.NoError(t, err)
	assert.Equal(t, localTip, remoteTip)

	// remove: the branch is gone locally and on origin. The branch is
	// checked out and unmerged, so removal detaches first and forces.
	err = actions.Remove(ctx, rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true, Force: true})
	require.NoError(t, err)

	assert.False(t, scene.Repo.BranchExists("myfeature"))
	assert.False(t, scene.Repo.RemoteBranchExists("origin", "myfeature"))
}

func TestCreateRemoveRoundTripRealRepo(t *testing.T) {
	scene := testhelpers.NewScene(t)
	rctx := newSceneContext(scene)
	ctx := context.Background()

	require.False(t, scene.Repo.BranchExists("myfeature"))
	require.False(t, scene.Repo.RemoteBranchExists("origin", "myfeature"))

	err := actions.Create(ctx, rctx, actions.CreateOptions{BranchName: "myfeature"})
	require.NoError(t, err)

	err = actions.Remove(ctx, rctx, actions.RemoveOptions{BranchName: "myfeature", Yes: true})
	require.NoError(t, err)

	assert.False(t, scene.Repo.BranchExists("myfeature"))
	assert.False(t, scene.Repo.RemoteBranchExists("origin", "myfeature"))
}

func TestRebaseLinearizesOntoUpstreamTip(t *testing.T) {
	scene := testhelpers.NewScene(t)
	rctx := newSceneContext(scene)
	ctx := context.Background()

	err := actions.Create(ctx, rctx, actions.CreateOptions{BranchName: "myfeature", NoPublish: true})
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CreateFileAndCommit("feature.txt", "feature", "feature change"))

	// The upstream mainline moves ahead on an unrelated file
	require.NoError(t, scene.AdvanceUpstreamMainline("upstream change", "upstream commit"))

	err = actions.Rebase(ctx, rctx, actions.RebaseOptions{BranchName: "myfeature"})
	require.NoError(t, err)

	// The branch's parent is now the new upstream tip
	parentTip, err := scene.Repo.RevParse("myfeature~1")
	require.NoError(t, err)
	upstreamTip, err := scene.Repo.RevParse("upstream/main")
	require.NoError(t, err)
	assert.Equal(t, upstreamTip, parentTip)

	// With no new upstream commits, a second rebase changes nothing
	tipBefore, err := scene.Repo.RevParse("myfeature")
	require.NoError(t, err)
	err = actions.Rebase(ctx, rctx, actions.RebaseOptions{BranchName: "myfeature"})
	require.NoError(t, err)
	tipAfter, err := scene.Repo.RevParse("myfeature")
	require.NoError(t, err)
	assert.Equal(t, tipBefore, tipAfter)
}

func TestRemoveNowhereRealRepo(t *testing.T) {
	scene := testhelpers.NewScene(t)
	rctx := newSceneContext(scene)

	err := actions.Remove(context.Background(), rctx, actions.RemoveOptions{BranchName: "ghost", Yes: true})
	assert.ErrorIs(t, err, gferrors.ErrBranchNotFound)
}
