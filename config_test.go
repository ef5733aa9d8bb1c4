package hepquery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := &Config{}
	c.normalize()
	require.Equal(t, "local", c.Master)
	require.Equal(t, "spark-hep", c.AppName)
	require.Equal(t, 10, c.NumPartitions)
}

func TestConfigOverrides(t *testing.T) {
	c := &Config{Master: "remote:7077", AppName: "dimuon", NumPartitions: 64}
	c.normalize()
	require.Equal(t, "remote:7077", c.Master)
	require.Equal(t, "dimuon", c.AppName)
	require.Equal(t, 64, c.NumPartitions)
}
