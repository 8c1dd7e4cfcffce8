package tcp

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	sock, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(sock, func(conn net.Conn) {
		_, _ = io.Copy(conn, conn)
		_ = conn.Close()
	})

	done := make(chan error, 1)
	go func() {
		done <- server.Start()
	}()

	conn, err := net.Dial("tcp", server.Addr().String())
	require.NoError(t, err)

	_, err = conn.Write([]byte("ping"))
	require.NoError(t, err)

	buff := make([]byte, 4)
	_, err = io.ReadFull(conn, buff)
	require.NoError(t, err)
	require.Equal(t, "ping", string(buff))
	require.NoError(t, conn.Close())

	require.NoError(t, server.Stop())
	err = <-done
	require.ErrorIs(t, err, ErrShutdown)
	require.Equal(t, "server is shut down", err.Error())
}
