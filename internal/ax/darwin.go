//go:build darwin && cgo

package ax

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework ApplicationServices
#include <stdlib.h>
#import <Cocoa/Cocoa.h>
#import <ApplicationServices/ApplicationServices.h>

typedef struct {
	pid_t pid;
	char  *name;
} kc_process;

// kc_list_processes returns the regular (Dock-visible) running
// applications. The caller frees the array and each name.
static kc_process *kc_list_processes(int *count) {
	@autoreleasepool {
		NSArray<NSRunningApplication *> *apps =
			[[NSWorkspace sharedWorkspace] runningApplications];
		kc_process *out = calloc([apps count], sizeof(kc_process));
		int n = 0;
		for (NSRunningApplication *app in apps) {
			if ([app activationPolicy] != NSApplicationActivationPolicyRegular) {
				continue;
			}
			NSString *name = [app localizedName];
			out[n].pid = [app processIdentifier];
			out[n].name = strdup(name ? [name UTF8String] : "");
			n++;
		}
		*count = n;
		return out;
	}
}

// kc_frontmost_name returns the focused application's display name, or
// NULL when it cannot be determined. The caller frees the string.
static char *kc_frontmost_name(void) {
	@autoreleasepool {
		NSRunningApplication *front =
			[[NSWorkspace sharedWorkspace] frontmostApplication];
		if (front == nil) {
			return NULL;
		}
		NSString *name = [front localizedName];
		if (name == nil) {
			return NULL;
		}
		return strdup([name UTF8String]);
	}
}

static int kc_trusted(void) {
	return AXIsProcessTrusted() ? 1 : 0;
}

static AXUIElementRef kc_app_element(pid_t pid) {
	return AXUIElementCreateApplication(pid);
}

// kc_copy_attr copies one attribute value; the AXError lands in *err.
static CFTypeRef kc_copy_attr(AXUIElementRef el, const char *name, int *err) {
	CFStringRef attr = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	*err = (int)AXUIElementCopyAttributeValue(el, attr, &value);
	CFRelease(attr);
	return value;
}

// kc_value_kind tags a copied value: 1 string, 2 number, 3 element,
// 4 element array, 0 anything else.
static int kc_value_kind(CFTypeRef value) {
	if (value == NULL) {
		return 0;
	}
	CFTypeID id = CFGetTypeID(value);
	if (id == CFStringGetTypeID()) {
		return 1;
	}
	if (id == CFNumberGetTypeID()) {
		return 2;
	}
	if (id == AXUIElementGetTypeID()) {
		return 3;
	}
	if (id == CFArrayGetTypeID()) {
		return 4;
	}
	return 0;
}

static char *kc_string_value(CFTypeRef value) {
	CFStringRef s = (CFStringRef)value;
	CFIndex length = CFStringGetMaximumSizeForEncoding(
		CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
	char *buf = malloc(length);
	if (!CFStringGetCString(s, buf, length, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}

static long long kc_number_value(CFTypeRef value) {
	long long n = 0;
	CFNumberGetValue((CFNumberRef)value, kCFNumberLongLongType, &n);
	return n;
}

static int kc_array_count(CFTypeRef value) {
	return (int)CFArrayGetCount((CFArrayRef)value);
}

static AXUIElementRef kc_array_element(CFTypeRef value, int i) {
	CFTypeRef item = CFArrayGetValueAtIndex((CFArrayRef)value, i);
	if (item == NULL || CFGetTypeID(item) != AXUIElementGetTypeID()) {
		return NULL;
	}
	return (AXUIElementRef)CFRetain(item);
}

static void kc_release(CFTypeRef value) {
	if (value != NULL) {
		CFRelease(value);
	}
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// NewProvider returns the live accessibility adapter. It fails when the
// process has not been granted accessibility permission, which the caller
// reports as a warning and an empty walker contribution.
func NewProvider() (Provider, error) {
	if C.kc_trusted() == 0 {
		return nil, fmt.Errorf("accessibility permission not granted: %w", ErrUnsupported)
	}
	return &darwinProvider{}, nil
}

type darwinProvider struct{}

func (p *darwinProvider) Processes() ([]Process, error) {
	var count C.int
	list := C.kc_list_processes(&count)
	if list == nil {
		return nil, fmt.Errorf("failed to enumerate running applications")
	}
	defer C.free(unsafe.Pointer(list))

	procs := make([]Process, 0, int(count))
	entries := unsafe.Slice(list, int(count))
	for _, e := range entries {
		procs = append(procs, Process{
			PID:  int32(e.pid),
			Name: C.GoString(e.name),
		})
		C.free(unsafe.Pointer(e.name))
	}
	return procs, nil
}

func (p *darwinProvider) AppElement(pid int32) (Element, error) {
	ref := C.kc_app_element(C.pid_t(pid))
	if ref == nil {
		return nil, ErrNotAvailable
	}
	return newDarwinElement(ref), nil
}

func (p *darwinProvider) FrontmostApp() (string, bool) {
	name := C.kc_frontmost_name()
	if name == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(name))
	return C.GoString(name), true
}

// darwinElement wraps one AXUIElementRef. The finalizer releases the
// underlying CF object once the walk no longer references it.
type darwinElement struct {
	ref C.AXUIElementRef
}

func newDarwinElement(ref C.AXUIElementRef) *darwinElement {
	el := &darwinElement{ref: ref}
	runtime.SetFinalizer(el, func(e *darwinElement) {
		C.kc_release(C.CFTypeRef(unsafe.Pointer(e.ref)))
	})
	return el
}

func (e *darwinElement) Attribute(name string) (interface{}, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var axErr C.int
	value := C.kc_copy_attr(e.ref, cname, &axErr)
	if axErr != 0 || value == nil {
		return nil, ErrNotAvailable
	}
	defer C.kc_release(value)

	switch C.kc_value_kind(value) {
	case 1:
		s := C.kc_string_value(value)
		if s == nil {
			return nil, ErrNotAvailable
		}
		defer C.free(unsafe.Pointer(s))
		return C.GoString(s), nil
	case 2:
		return int64(C.kc_number_value(value)), nil
	case 3:
		retained := C.CFRetain(value)
		return newDarwinElement(C.AXUIElementRef(unsafe.Pointer(retained))), nil
	case 4:
		count := int(C.kc_array_count(value))
		children := make([]Element, 0, count)
		for i := 0; i < count; i++ {
			ref := C.kc_array_element(value, C.int(i))
			if ref == nil {
				continue
			}
			children = append(children, newDarwinElement(ref))
		}
		return children, nil
	default:
		return nil, ErrNotAvailable
	}
}
