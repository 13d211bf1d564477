package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls   []string
	touches int

	pageArg    int
	searchArgs [2]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) touch()           { f.touches++ }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) AddUser(ctx context.Context) error {
	f.calls = append(f.calls, "adduser")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Page(ctx context.Context, n int) error {
	f.calls = append(f.calls, "page")
	f.pageArg = n
	return nil
}
func (f *fakeExec) Next(ctx context.Context) error { f.calls = append(f.calls, "next"); return nil }
func (f *fakeExec) Prev(ctx context.Context) error { f.calls = append(f.calls, "prev"); return nil }
func (f *fakeExec) Search(ctx context.Context, field, value string) error {
	f.calls = append(f.calls, "search")
	f.searchArgs = [2]string{field, value}
	return nil
}
func (f *fakeExec) ResetSearch(ctx context.Context) error {
	f.calls = append(f.calls, "reset")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPLDispatch(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"list",
		"page 3",
		"next",
		"prev",
		"search email jdoe@example.com",
		"reset",
		"adduser",
		"logout",
		"foobar",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader(input)))

	want := []string{"login", "list", "page", "next", "prev", "search", "reset", "adduser", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}
	if exec.pageArg != 3 {
		t.Fatalf("page arg: got %d, want 3", exec.pageArg)
	}
	if exec.searchArgs != [2]string{"email", "jdoe@example.com"} {
		t.Fatalf("search args: got %v", exec.searchArgs)
	}
}

func TestRunREPLSearchValueMayContainSpaces(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("search firstName Mary Ann\nexit\n")))

	if exec.searchArgs != [2]string{"firstName", "Mary Ann"} {
		t.Fatalf("search args: got %v", exec.searchArgs)
	}
}

func TestRunREPLUsageErrorsDoNotDispatch(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("page\npage zero\npage 0\nsearch email\nquit\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPLEveryLineCountsAsActivity(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("help\n\nlist\nexit\n")))

	// blank lines are input too
	if exec.touches != 4 {
		t.Fatalf("touches: got %d, want 4", exec.touches)
	}
}
