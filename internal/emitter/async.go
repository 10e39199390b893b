package emitter

import "xlate/pkg/script"

// exceptionNamespace is the typed-helper object exception wrapping hangs
// off of, alongside the top-level Script object.
const exceptionNamespace = "Exception"

// The iterator and task-completion-source helper names below are not part
// of the fixed top-level/typed-helper set that covers reflection, casting,
// delegates, arrays, and Nullable/Int32/Exception arithmetic; they are this
// compiler's own addressing of the runtime's generator and promise
// machinery, named to match the C# surface they implement (GetEnumerator,
// TaskCompletionSource).

// NewEnumerator builds the runtime enumerator constructor an iterator
// block's state machine drives: next()/current/dispose.
func (e *Emitter) NewEnumerator(moveNext, getCurrent, dispose script.Expr) script.Expr {
	return scriptCall("makeEnumerator", moveNext, getCurrent, dispose)
}

// NewEnumerable builds the runtime enumerable wrapper around a factory
// that produces a fresh enumerator per GetEnumerator() call.
func (e *Emitter) NewEnumerable(getEnumeratorFactory script.Expr) script.Expr {
	return scriptCall("makeEnumerable", getEnumeratorFactory)
}

// NewTaskCompletionSource builds a fresh task-completion-source value.
func (e *Emitter) NewTaskCompletionSource() script.Expr {
	return scriptCall("newTaskCompletionSource")
}

// SetTaskResult builds the call completing a task-completion-source with a
// successful result.
func (e *Emitter) SetTaskResult(source, value script.Expr) script.Expr {
	return scriptCall("setTaskResult", source, value)
}

// SetTaskException builds the call completing a task-completion-source
// with a failure, wrapping the exception via Exception.wrap the way every
// thrown value is wrapped when crossing into the runtime's promise
// machinery.
func (e *Emitter) SetTaskException(source, exception script.Expr) script.Expr {
	return scriptCall("setTaskException", source, nsCall(exceptionNamespace, "wrap", exception))
}

// TaskOf builds the accessor retrieving the task tracked by a
// task-completion-source.
func (e *Emitter) TaskOf(source script.Expr) script.Expr {
	return &script.Member{Object: source, Property: "task"}
}
