// Package broker follows job status notifications on the status broker's
// socket.io feed until a terminal status arrives.
package broker
