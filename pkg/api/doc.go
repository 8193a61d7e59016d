/*
Package api implements the BESSControl gRPC service, the single entry point
for building, inspecting, and tearing down the dataflow graph.

Handlers hold no state of their own; they validate arguments, take the pause
barrier where a mutation touches worker-visible structures, and mutate the
manager's registries. Domain failures are returned inside the response's
Error field with errno-compatible codes; the transport status is OK unless
the transport itself failed.

Handler execution is serialized by a server-wide interceptor, making every
RPC atomic with respect to every other: the graph has exactly one writer.
*/
package api
