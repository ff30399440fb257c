// Package genl implements a generic-netlink-style family registry: a
// table of named, numbered command families reached by dispatching an
// incoming wire message to the callback registered for its command id,
// per spec.md section 4.3. It consumes netcore.Pool to allocate reply
// buffers, the same leaf dependency the driver package has on the pool.
package genl
