// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package scan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	intoto "github.com/in-toto/in-toto-golang/in_toto"
	"github.com/stretchr/testify/require"
)

func TestProvenance(t *testing.T) {
	report := filepath.Join(t.TempDir(), "junit.xml")
	require.NoError(t, os.WriteFile(report, []byte("<testsuite/>"), os.FileMode(0o644)))

	svc := NewService(&stubReportSource{reports: []string{report}})
	args := []string{"-Dsonar.projectKey=com.example:app"}

	statement, err := svc.Provenance(args)
	require.NoError(t, err)
	require.Equal(t, BuilderID, statement.Predicate.Builder.ID)
	require.Equal(t, args, statement.Predicate.Invocation.Parameters)

	require.Len(t, statement.Predicate.Materials, 1)
	require.Equal(t, "file:"+report, statement.Predicate.Materials[0].URI)
	require.Len(t, statement.Predicate.Materials[0].Digest["sha256"], 64)
}

func TestProvenanceUnreadableReport(t *testing.T) {
	svc := NewService(&stubReportSource{
		reports: []string{filepath.Join(t.TempDir(), "gone.xml")},
	})
	_, err := svc.Provenance([]string{})
	require.Error(t, err)
}

func TestWriteProvenance(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&stubReportSource{})

	path, err := svc.WriteProvenance([]string{"-Dsonar.sources=src"}, dir)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	statement := intoto.ProvenanceStatement{}
	require.NoError(t, json.Unmarshal(data, &statement))
	require.Equal(t, []interface{}{"-Dsonar.sources=src"}, statement.Predicate.Invocation.Parameters)
}
