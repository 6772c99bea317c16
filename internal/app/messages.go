// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Log messages written by App.
const (
	// MsgDocumentValid is logged by Check after a successful build.
	MsgDocumentValid = "connection document is valid"

	// MsgConnected is logged by Connect once a server accepted the
	// connection.
	MsgConnected = "connected to server"

	// MsgWaitingForConnection is logged when the initial connect is being
	// retried in the background.
	MsgWaitingForConnection = "waiting for connection"

	// MsgReplyReceived is logged by Request when the reply arrived.
	MsgReplyReceived = "reply received"

	// MsgDrained is logged after the connection was drained and closed.
	MsgDrained = "connection drained"
)
