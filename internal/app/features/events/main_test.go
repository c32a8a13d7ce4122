package events

import (
	"fmt"
	"os"
	"testing"

	"github.com/dalemusser/groupflight/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := testutil.BootTemplates(); err != nil {
		fmt.Fprintln(os.Stderr, "boot templates:", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}
