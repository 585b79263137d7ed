// Package mcp implements the Model Context Protocol (MCP) server that
// exposes Figma document tools to an AI client.
//
// # Overview
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// Tool calls are translated into commands for the Figma plugin and relayed
// through the websocket client in the figma package:
//
//	MCP client (AI agent)
//	    ↓ (JSON-RPC over stdio)
//	Server.Run()
//	    ↓ (tools/call → dispatch)
//	figma.Client.SendCommand()
//	    ↓ (websocket channel)
//	Relay server → Figma plugin
//
// # Lifecycle
//
// A session starts with the standard initialize/initialized handshake,
// after which the client may list tools and call them. Every session must
// call join_channel before any other tool: commands are routed to the
// Figma plugin instance listening on that channel, and the figma client
// rejects commands sent before a channel is joined.
//
// # Tool results
//
// Successful calls return their payload as JSON text content (images are
// returned as base64 image content from export_node_as_image). Failures
// that belong to the tool domain, such as a missing parameter or a plugin
// error, come back as text results with IsError set rather than JSON-RPC
// protocol errors, so the client can surface them inline.
package mcp
