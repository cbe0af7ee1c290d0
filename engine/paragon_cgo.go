// MODUL: paragon_cgo
// ZWECK: dlopen/dlsym-Binding an die Paragon-Shared-Library (C-ABI "teleport")
// INPUT: Pfad zur Shared-Library (teleport_<arch>_<os>.so)
// OUTPUT: ABI-Implementierung ueber echten Fremd-Aufrufen
// NEBENEFFEKTE: Laedt nativen Code in den Prozess, alloziert C-Strings pro Aufruf
// ABHAENGIGKEITEN: cgo, dlfcn (libdl)
// HINWEISE: Nur Unix mit cgo; Windows und nocgo nutzen paragon_stub.go

//go:build cgo && !windows

package engine

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdbool.h>
#include <stdlib.h>

typedef char* (*teleport_newnet_fn)(char*, char*, char*, bool, bool);
typedef char* (*teleport_perturb_fn)(long long, double, long long);
typedef char* (*teleport_gpu_fn)(long long);
typedef char* (*teleport_call_fn)(long long, char*, char*);
typedef void (*teleport_freenet_fn)(long long);
typedef void (*teleport_freestr_fn)(char*);

static char* teleport_newnet(void* fn, char* l, char* a, char* f, bool gpu, bool dbg) {
	return ((teleport_newnet_fn)fn)(l, a, f, gpu, dbg);
}
static char* teleport_perturb(void* fn, long long h, double mag, long long seed) {
	return ((teleport_perturb_fn)fn)(h, mag, seed);
}
static char* teleport_gpu(void* fn, long long h) {
	return ((teleport_gpu_fn)fn)(h);
}
static char* teleport_call(void* fn, long long h, char* m, char* args) {
	return ((teleport_call_fn)fn)(h, m, args);
}
static void teleport_freenet(void* fn, long long h) {
	((teleport_freenet_fn)fn)(h);
}
static void teleport_freestr(void* fn, char* p) {
	((teleport_freestr_fn)fn)(p);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Library ist die geladene Paragon-Bibliothek mit aufgeloesten Symbolen.
type Library struct {
	handle  unsafe.Pointer
	newNet  unsafe.Pointer
	perturb unsafe.Pointer
	enable  unsafe.Pointer
	disable unsafe.Pointer
	call    unsafe.Pointer
	freeNet unsafe.Pointer
	freeStr unsafe.Pointer
}

// Load oeffnet die Shared-Library und loest alle Paragon_*-Symbole auf.
func Load(path string) (ABI, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_GLOBAL)
	if h == nil {
		return nil, fmt.Errorf("engine-bibliothek laden: %s", C.GoString(C.dlerror()))
	}

	lib := &Library{handle: h}
	symbols := []struct {
		name string
		dst  *unsafe.Pointer
	}{
		{"Paragon_NewNetworkFloat32", &lib.newNet},
		{"Paragon_PerturbWeights", &lib.perturb},
		{"Paragon_EnableGPU", &lib.enable},
		{"Paragon_DisableGPU", &lib.disable},
		{"Paragon_Call", &lib.call},
		{"Paragon_Free", &lib.freeNet},
		{"Paragon_FreeCString", &lib.freeStr},
	}
	for _, s := range symbols {
		cname := C.CString(s.name)
		ptr := C.dlsym(h, cname)
		C.free(unsafe.Pointer(cname))
		if ptr == nil {
			C.dlclose(h)
			return nil, fmt.Errorf("symbol %s aufloesen: %s", s.name, C.GoString(C.dlerror()))
		}
		*s.dst = ptr
	}
	return lib, nil
}

// =============================================================================
// RawBuffer ueber Go-allozierten C-Strings
// =============================================================================

// cBuffer haelt einen von der Engine allozierten C-String.
type cBuffer struct {
	ptr     *C.char
	freeStr unsafe.Pointer
}

func (b *cBuffer) Bytes() []byte {
	if b.ptr == nil {
		return nil
	}
	return []byte(C.GoString(b.ptr))
}

// Free gibt den String an den Engine-Allocator zurueck (Paragon_FreeCString).
func (b *cBuffer) Free() {
	if b.ptr != nil {
		C.teleport_freestr(b.freeStr, b.ptr)
		b.ptr = nil
	}
}

func (l *Library) wrap(p *C.char) RawBuffer {
	return &cBuffer{ptr: p, freeStr: l.freeStr}
}

// =============================================================================
// ABI-Implementierung
// =============================================================================

func (l *Library) NewNetworkFloat32(layersJSON, activationsJSON, fullyJSON string, useGPU, debug bool) RawBuffer {
	cl := C.CString(layersJSON)
	ca := C.CString(activationsJSON)
	cf := C.CString(fullyJSON)
	defer C.free(unsafe.Pointer(cl))
	defer C.free(unsafe.Pointer(ca))
	defer C.free(unsafe.Pointer(cf))

	return l.wrap(C.teleport_newnet(l.newNet, cl, ca, cf, C.bool(useGPU), C.bool(debug)))
}

func (l *Library) PerturbWeights(h Handle, magnitude float64, seed int64) RawBuffer {
	return l.wrap(C.teleport_perturb(l.perturb, C.longlong(h), C.double(magnitude), C.longlong(seed)))
}

func (l *Library) EnableGPU(h Handle) RawBuffer {
	return l.wrap(C.teleport_gpu(l.enable, C.longlong(h)))
}

func (l *Library) DisableGPU(h Handle) RawBuffer {
	return l.wrap(C.teleport_gpu(l.disable, C.longlong(h)))
}

func (l *Library) Call(h Handle, method, argsJSON string) RawBuffer {
	cm := C.CString(method)
	cargs := C.CString(argsJSON)
	defer C.free(unsafe.Pointer(cm))
	defer C.free(unsafe.Pointer(cargs))

	return l.wrap(C.teleport_call(l.call, C.longlong(h), cm, cargs))
}

func (l *Library) FreeNetwork(h Handle) {
	C.teleport_freenet(l.freeNet, C.longlong(h))
}

// Close entlaedt die Bibliothek. Nur nach dem letzten Engine-Aufruf verwenden.
func (l *Library) Close() error {
	if l.handle != nil {
		if C.dlclose(l.handle) != 0 {
			return fmt.Errorf("engine-bibliothek entladen: %s", C.GoString(C.dlerror()))
		}
		l.handle = nil
	}
	return nil
}
