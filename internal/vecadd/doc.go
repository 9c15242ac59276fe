// Package vecadd dispatches float32 element-wise addition to the scalar,
// SSE (4-lane) or AVX (8-lane) kernel.
//
// Kernels register themselves with registry.Global from their init functions;
// which kernel packages are linked is decided by the init_*.go files:
//
//   - Default (amd64): generic, sse and avx kernels
//   - purego tag: generic kernel only
//   - Other architectures: generic kernel only
//
// AddBlock always uses the widest kernel the CPU supports. Kernel returns a
// specific one by name, so that the vector paths can be checked against the
// scalar reference individually.
package vecadd
