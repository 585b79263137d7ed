// Package relay implements the WebSocket channel relay that bridges the
// MCP server and the Figma plugin.
//
// # Overview
//
// Neither side can open a connection to the other directly: the MCP server
// runs as a local subprocess and the plugin runs sandboxed inside Figma.
// Both instead dial the relay and join a shared named channel. The relay
// is a plain pub/sub hub with no knowledge of command semantics:
//
//	MCP server ──ws──┐
//	                 ├── relay hub (channel "abc") ── fan-out
//	Figma plugin ─ws─┘
//
// # Protocol
//
// Clients send JSON frames with a "type" field:
//
//   - join: adds the connection to the named channel. The joiner receives
//     a plain confirmation followed by a result correlated with the
//     request id; other members get a peer-joined notice.
//   - message: broadcast the opaque message payload to every member of
//     the channel, sender included. Recipients can distinguish echoes by
//     the "sender" label ("You" vs "User").
//
// Frames referencing a missing or unjoined channel get an error frame
// back; malformed JSON is logged and dropped without closing the
// connection. When a connection closes, remaining channel members get a
// peer-left notice.
package relay
