// Package errs defines the user-facing failure kinds of gitlet.
//
// Every kind carries the one-line message printed to the user. Internal
// failures (I/O, corrupt metadata) are plain wrapped errors and have kind
// Internal.
package errs

import "errors"

type Kind int

const (
	Internal Kind = iota
	NotInitialized
	AlreadyInitialized
	FileNotFound
	NotInCommit
	EmptyMessage
	NothingStaged
	NothingToRemove
	BranchExists
	BranchNotFound
	CannotRemoveCurrentBranch
	CommitNotFound
	UntrackedObstruction
	UncommittedChanges
	SelfMerge
	AncestorMerge
	FastForward
	NoCommitWithMessage
	AlreadyOnBranch
	InvalidBranchName
	IncorrectOperands
	IntegrityFailure
	UnknownCommand
	MissingCommand
)

var kindNames = map[Kind]string{
	Internal:                  "Internal",
	NotInitialized:            "NotInitialized",
	AlreadyInitialized:        "AlreadyInitialized",
	FileNotFound:              "FileNotFound",
	NotInCommit:               "NotInCommit",
	EmptyMessage:              "EmptyMessage",
	NothingStaged:             "NothingStaged",
	NothingToRemove:           "NothingToRemove",
	BranchExists:              "BranchExists",
	BranchNotFound:            "BranchNotFound",
	CannotRemoveCurrentBranch: "CannotRemoveCurrentBranch",
	CommitNotFound:            "CommitNotFound",
	UntrackedObstruction:      "UntrackedObstruction",
	UncommittedChanges:        "UncommittedChanges",
	SelfMerge:                 "SelfMerge",
	AncestorMerge:             "AncestorMerge",
	FastForward:               "FastForward",
	NoCommitWithMessage:       "NoCommitWithMessage",
	AlreadyOnBranch:           "AlreadyOnBranch",
	InvalidBranchName:         "InvalidBranchName",
	IncorrectOperands:         "IncorrectOperands",
	IntegrityFailure:          "IntegrityFailure",
	UnknownCommand:            "UnknownCommand",
	MissingCommand:            "MissingCommand",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is a user-facing failure. Two errors match under errors.Is when
// their kinds are equal, so callers may compare against any sentinel of a kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(k Kind, msg string) *Error { return &Error{Kind: k, Msg: msg} }

var (
	ErrNotInitialized       = newError(NotInitialized, "Not in an initialized Gitlet directory.")
	ErrAlreadyInitialized   = newError(AlreadyInitialized, "A Gitlet version-control system already exists in the current directory.")
	ErrFileNotFound         = newError(FileNotFound, "File does not exist.")
	ErrNotInCommit          = newError(NotInCommit, "File does not exist in that commit.")
	ErrEmptyMessage         = newError(EmptyMessage, "Please enter a commit message.")
	ErrNothingStaged        = newError(NothingStaged, "No changes added to the commit.")
	ErrNothingToRemove      = newError(NothingToRemove, "No reason to remove the file.")
	ErrBranchExists         = newError(BranchExists, "A branch with that name already exists.")
	ErrBranchNotFound       = newError(BranchNotFound, "A branch with that name does not exist.")
	ErrNoSuchBranch         = newError(BranchNotFound, "No such branch exists.")
	ErrCannotRemoveCurrent  = newError(CannotRemoveCurrentBranch, "Cannot remove the current branch.")
	ErrCommitNotFound       = newError(CommitNotFound, "No commit with that id exists.")
	ErrUntrackedObstruction = newError(UntrackedObstruction, "There is an untracked file in the way; delete it, or add and commit it first.")
	ErrUncommittedChanges   = newError(UncommittedChanges, "You have uncommitted changes.")
	ErrSelfMerge            = newError(SelfMerge, "Cannot merge a branch with itself.")
	ErrAncestorMerge        = newError(AncestorMerge, "Given branch is an ancestor of the current branch.")
	ErrFastForward          = newError(FastForward, "Current branch fast-forwarded.")
	ErrNoCommitWithMessage  = newError(NoCommitWithMessage, "Found no commit with that message.")
	ErrAlreadyOnBranch      = newError(AlreadyOnBranch, "No need to checkout the current branch.")
	ErrInvalidBranchName    = newError(InvalidBranchName, "Invalid branch name.")
	ErrIncorrectOperands    = newError(IncorrectOperands, "Incorrect operands.")
	ErrIntegrityFailure     = newError(IntegrityFailure, "Repository integrity check failed.")
	ErrUnknownCommand       = newError(UnknownCommand, "No command with that name exists.")
	ErrMissingCommand       = newError(MissingCommand, "Please enter a command.")
)

// As returns the user-facing error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the kind of err. Errors without a user-facing kind are Internal.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
