package unasync

import (
	"github.com/wippyai/unasync/rewrite"
	"github.com/wippyai/unasync/textual"
)

// Source rewrites one async function or trait method into its
// synchronous form: the async qualifier is cleared and every
// structurally reachable .await is unwrapped. Input that is not
// function-shaped fails with an error naming the item kind.
func Source(src string) (string, error) {
	return rewrite.Source(src)
}

// Strip is the textual fallback: it deletes every literal "async" and
// ".await" substring from src with no structural awareness. It always
// succeeds; identifiers containing those spellings are corrupted, so
// prefer Source wherever it can do the job.
func Strip(src string) string {
	return textual.Strip(src)
}
