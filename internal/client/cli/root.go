package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if u := a.store.State(); u.Name != "" {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Outstagram CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
