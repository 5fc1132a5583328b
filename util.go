// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "unsafe"

// ptrSize is the size of a pointer in bytes, used to validate alignment
// arguments at construction time.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))
