package rawhandle

import "unsafe"

// UIKitHandle describes a UIKit window.
//
// Expected on iOS, tvOS, and Mac Catalyst.
type UIKitHandle struct {
	// UIWindow is a pointer to the UIWindow instance.
	UIWindow unsafe.Pointer
	// UIView is a pointer to the window's root UIView.
	UIView unsafe.Pointer
	// UIViewController is a pointer to the root UIViewController, when
	// the producer has one.
	UIViewController unsafe.Pointer
}

func (UIKitHandle) isRawWindowHandle() {}
