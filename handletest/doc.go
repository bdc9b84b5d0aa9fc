// Package handletest provides conformance helpers for
// rawhandle.WindowHandleProvider implementations.
//
// Only the structural half of the provider contract is checkable:
// call-to-call stability and returning a variant the library defines.
// Whether a non-sentinel field refers to a live OS object cannot be
// verified without platform calls, and nothing in this package attempts
// it.
//
//	func TestWindowProvider(t *testing.T) {
//	    w := newTestWindow(t)
//	    handletest.Stable(t, w)
//	    handletest.Classifiable(t, w)
//	}
package handletest
