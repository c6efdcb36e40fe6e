package topology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjcad/mjcad/internal/document"
)

func TestFromDocument(t *testing.T) {
	doc := &document.Document{
		Bodies: []*document.TopologyNode{
			{
				Label: "base",
				Children: []*document.TopologyNode{
					{
						Label: "arm",
						Joint: &document.JointDecl{
							Type:     "hinge",
							Position: "arm_pivot",
							Params: []document.Attr{
								{Key: "axis", Value: document.String("arm_axis")},
								{Key: "damping", Value: document.Number(0.25)},
							},
						},
					},
					{Label: "plate"},
				},
			},
		},
	}

	root, err := FromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "base", root.Label)
	assert.Nil(t, root.Joint)
	require.Len(t, root.Children, 2)

	arm := root.Children[0]
	require.NotNil(t, arm.Joint)
	assert.Equal(t, "hinge", arm.Joint.Type)
	assert.Equal(t, "arm_pivot", arm.Joint.Position)

	axis, ok := arm.Joint.Param("axis")
	require.True(t, ok)
	s, _ := axis.Scalar()
	assert.Equal(t, "arm_axis", s)

	assert.Nil(t, root.Children[1].Joint, "a body without a joint block is welded")
}

func TestFromDocumentStripsFreeJointExtras(t *testing.T) {
	doc := &document.Document{
		Bodies: []*document.TopologyNode{
			{
				Label: "base",
				Children: []*document.TopologyNode{
					{
						Label: "ball",
						Joint: &document.JointDecl{
							Type:     "Free",
							Position: "center",
							Params:   []document.Attr{{Key: "axis", Value: document.String("up")}},
						},
					},
				},
			},
		},
	}

	root, err := FromDocument(doc)
	require.NoError(t, err)

	joint := root.Children[0].Joint
	require.NotNil(t, joint)
	assert.Equal(t, "Free", joint.Type)
	assert.Equal(t, "center", joint.Position, "the position reference survives for anchor resolution")
	assert.Empty(t, joint.Params)
}

func TestFromDocumentKeepsUnknownJointTypes(t *testing.T) {
	doc := &document.Document{
		Bodies: []*document.TopologyNode{
			{
				Label: "base",
				Children: []*document.TopologyNode{
					{Label: "arm", Joint: &document.JointDecl{Type: "helical"}},
				},
			},
		},
	}

	root, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "helical", root.Children[0].Joint.Type)
}

func TestFromDocumentRootCount(t *testing.T) {
	_, err := FromDocument(&document.Document{})
	var topoErr *document.MalformedTopologyError
	require.True(t, errors.As(err, &topoErr))

	_, err = FromDocument(&document.Document{
		Bodies: []*document.TopologyNode{{Label: "a"}, {Label: "b"}},
	})
	require.True(t, errors.As(err, &topoErr))
	assert.Contains(t, err.Error(), "exactly one")
}

func TestFromDocumentRejectsDuplicateLabels(t *testing.T) {
	doc := &document.Document{
		Bodies: []*document.TopologyNode{
			{
				Label: "base",
				Children: []*document.TopologyNode{
					{Label: "arm"},
					{Label: "arm"},
				},
			},
		},
	}

	_, err := FromDocument(doc)
	require.Error(t, err)

	var topoErr *document.MalformedTopologyError
	require.True(t, errors.As(err, &topoErr))
	assert.Equal(t, "arm", topoErr.Address)
}

func TestSpecParam(t *testing.T) {
	s := &Spec{Params: []document.Attr{{Key: "axis", Value: document.String("z")}}}

	_, ok := s.Param("missing")
	assert.False(t, ok)

	v, ok := s.Param("axis")
	require.True(t, ok)
	text, _ := v.Scalar()
	assert.Equal(t, "z", text)
}
