package git

import "strings"

// remoteFailurePatterns are stderr fragments git emits when a remote cannot
// be reached, across the https and ssh transports.
var remoteFailurePatterns = []string{
	"could not resolve host",
	"unable to access",
	"could not read from remote repository",
	"connection refused",
	"connection timed out",
	"connection reset by peer",
	"operation timed out",
	"network is unreachable",
	"no route to host",
	"failed to connect",
}

// IsRemoteFailure reports whether git stderr output indicates that the
// remote could not be reached
func IsRemoteFailure(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, pattern := range remoteFailurePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// nonFastForwardPatterns are stderr fragments git emits when a push is
// rejected because the remote branch has diverged. "stale info" is the
// force-with-lease variant of the same rejection.
var nonFastForwardPatterns = []string{
	"non-fast-forward",
	"fetch first",
	"stale info",
	"[rejected]",
	"cannot lock ref",
}

// IsNonFastForwardRejection reports whether git stderr output indicates a
// push rejected as non-fast-forward
func IsNonFastForwardRejection(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, pattern := range nonFastForwardPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
