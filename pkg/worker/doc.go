/*
Package worker manages the fixed-capacity array of dispatch threads and the
pause barrier that lets the control plane mutate shared state safely.

Each worker is an OS thread pinned to one CPU core, owning a scheduler tree
of traffic classes. Workers bracket every dispatch round with a barrier
token; pausing blocks the control thread until all outstanding tokens drain,
after which the graph, task attachments, and TC trees can be rewritten
without a reader in flight.
*/
package worker
