package parse

// Keyword identifies a form. Keywords are resolved from atom names at parse
// time.
type Keyword uint8

// Possible values for Keyword.
const (
	KwNone Keyword = iota
	KwDef
	KwPosition
	KwCenter
	KwUp
	KwVec3
	KwColor
	KwVertex
	KwVertexBuffer
	KwIndexBuffer
	KwFovy
	KwZNear
	KwZFar
	KwPerspective
	KwCamera
	KwTransform
	KwTranslate
	KwScale
	KwRotate
	KwTopology
	KwModel
	KwTexture
	KwDraw
	KwConfig
	// Primitive and interpreting-mode are only meaningful inside config.
	KwPrimitive
	KwInterpretingMode

	numKeywords
)

var keywordNames = [numKeywords]string{
	KwNone:             "",
	KwDef:              "def",
	KwPosition:         "position",
	KwCenter:           "center",
	KwUp:               "up",
	KwVec3:             "vec3",
	KwColor:            "color",
	KwVertex:           "vertex",
	KwVertexBuffer:     "vertex-buffer",
	KwIndexBuffer:      "index-buffer",
	KwFovy:             "fovy",
	KwZNear:            "z-near",
	KwZFar:             "z-far",
	KwPerspective:      "perspective",
	KwCamera:           "camera",
	KwTransform:        "transform",
	KwTranslate:        "translate",
	KwScale:            "scale",
	KwRotate:           "rotate",
	KwTopology:         "topology",
	KwModel:            "model",
	KwTexture:          "texture",
	KwDraw:             "draw",
	KwConfig:           "config",
	KwPrimitive:        "primitive",
	KwInterpretingMode: "interpreting-mode",
}

var keywordByName = map[string]Keyword{}

func init() {
	for kw, name := range keywordNames {
		if name != "" {
			keywordByName[name] = Keyword(kw)
		}
	}
}

func (kw Keyword) String() string {
	if kw < numKeywords {
		return keywordNames[kw]
	}
	return "?"
}

// LookupKeyword returns the keyword with the given name, or KwNone if there is
// no such keyword.
func LookupKeyword(name string) Keyword {
	return keywordByName[name]
}

// Keywords returns all keywords other than KwNone, in declaration order.
func Keywords() []Keyword {
	kws := make([]Keyword, 0, numKeywords-1)
	for kw := KwNone + 1; kw < numKeywords; kw++ {
		kws = append(kws, kw)
	}
	return kws
}
