// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessorLookups(t *testing.T) {
	a := NewAccessor(map[string]string{
		KeyHostURL:        "http://sonar.example.com:9000",
		KeyProjectKey:     "com.example:app",
		KeyProjectVersion: "",
	})

	v, ok := a.HostURL()
	require.True(t, ok)
	require.Equal(t, "http://sonar.example.com:9000", v)

	v, ok = a.ProjectKey()
	require.True(t, ok)
	require.Equal(t, "com.example:app", v)

	// An empty string stored under a key is present, not absent
	v, ok = a.ProjectVersion()
	require.True(t, ok)
	require.Equal(t, "", v)

	// Keys not in the map are absent
	_, ok = a.JDBCPassword()
	require.False(t, ok)
	_, ok = a.AdditionalParameters()
	require.False(t, ok)
	_, ok = a.TargetJREHome()
	require.False(t, ok)
}
