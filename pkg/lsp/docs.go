package lsp

import "src.tvk.sh/pkg/parse"

var keywordDocs = map[parse.Keyword]string{
	parse.KwDef:      "(def NAME EXPR)\n\nBinds NAME to the value of EXPR. Has no value.",
	parse.KwPosition: "(position (x X) (y Y) (z Z)) or (position E)\n\nA point in space.",
	parse.KwCenter:   "(center (x X) (y Y) (z Z)) or (center E)\n\nThe point a camera looks at.",
	parse.KwUp:       "(up (x X) (y Y) (z Z)) or (up E)\n\nThe up direction of a camera.",
	parse.KwVec3:     "(vec3 (A B C)) or (vec3 E)\n\nA vector of three numbers.",
	parse.KwColor:    "(color #RRGGBBAA) or (color E)\n\nAn RGBA color.",
	parse.KwVertex: "(vertex POSITION COLOR), (vertex POSITION UV) or (vertex E)\n\n" +
		"A colored vertex, or a texture vertex whose UV is the x and y of a position.",
	parse.KwVertexBuffer: "(vertex-buffer (V1 V2 ...)) or (vertex-buffer E)\n\n" +
		"A list of vertices, all colored or all textured.",
	parse.KwIndexBuffer: "(index-buffer (I1 I2 ...)) or (index-buffer E)\n\nA list of vertex indices.",
	parse.KwFovy:        "(fovy E)\n\nThe vertical field of view of a perspective, in radians.",
	parse.KwZNear:       "(z-near E)\n\nThe near clipping plane of a perspective.",
	parse.KwZFar:        "(z-far E)\n\nThe far clipping plane of a perspective.",
	parse.KwPerspective: "(perspective FOVY ZNEAR ZFAR) or (perspective E)\n\nA perspective projection.",
	parse.KwCamera: "(camera POSITION CENTER UP PERSPECTIVE) or (camera E)\n\n" +
		"A camera at POSITION looking at CENTER.",
	parse.KwTransform: "(transform TRANSLATE SCALE ROTATE), (transform default) or (transform E)\n\n" +
		"The transform of a model: scaled, then rotated, then translated.",
	parse.KwTranslate: "(translate VEC3)\n\nThe translation of a transform.",
	parse.KwScale:     "(scale VEC3)\n\nThe scale of a transform.",
	parse.KwRotate:    "(rotate ANGLE VEC3) or (rotate E)\n\nA rotation by ANGLE radians around an axis.",
	parse.KwTopology: "(topology NAME) or (topology E)\n\n" +
		"One of point-list, line-list, line-strip, triangle-list, triangle-strip or default.",
	parse.KwModel: "(model VB IB TOPOLOGY TRANSFORM CAMERA [TEXTURE])\n\n" +
		"A drawable model. VB must be textured if and only if TEXTURE is given.",
	parse.KwTexture: "(texture NAME)\n\nAn image loaded by the renderer.",
	parse.KwDraw:    "(draw D1 D2 ...)\n\nSubmits models and vertex buffers to the renderer. Has no value.",
	parse.KwConfig: "(config (primitive NAME) (interpreting-mode NAME) ...)\n\n" +
		"Changes the topology of the renderer or the interpreting mode. Has no value.",
	parse.KwPrimitive: "(primitive NAME)\n\nA config entry that changes the topology of the renderer.",
	parse.KwInterpretingMode: "(interpreting-mode continuous) or (interpreting-mode manual)\n\n" +
		"A config entry that controls whether changes are evaluated automatically.",
}
