// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import "fmt"

// top level
const (
	ChunkMesh                = 0x00000000
	ChunkHierarchy           = 0x00000100
	ChunkAnimation           = 0x00000200
	ChunkCompressedAnimation = 0x00000280
	ChunkMorphAnimation      = 0x000002C0
	ChunkHModel              = 0x00000300
	ChunkLODModel            = 0x00000400
	ChunkCollection          = 0x00000420
	ChunkPoints              = 0x00000440
	ChunkLight               = 0x00000460
	ChunkEmitter             = 0x00000500
	ChunkAggregate           = 0x00000600
	ChunkHLod                = 0x00000700
	ChunkBox                 = 0x00000740
	ChunkNullObject          = 0x00000750
	ChunkLightscape          = 0x00000800
	ChunkDazzle              = 0x00000900
	ChunkSoundRObj           = 0x00000A00
)

// inside ChunkMesh
const (
	ChunkVertices            = 0x00000002
	ChunkVertexNormals       = 0x00000003
	ChunkMeshUserText        = 0x0000000C
	ChunkVertexInfluences    = 0x0000000E
	ChunkMeshHeader          = 0x0000001F
	ChunkTriangles           = 0x00000020
	ChunkVertexShadeIndices  = 0x00000022
	ChunkPrelitUnlit         = 0x00000023
	ChunkPrelitVertex        = 0x00000024
	ChunkPrelitLightmapMPass = 0x00000025
	ChunkPrelitLightmapMTex  = 0x00000026
	ChunkMaterialInfo        = 0x00000028
	ChunkShaders             = 0x00000029
	ChunkVertexMaterials     = 0x0000002A
	ChunkVertexMaterial      = 0x0000002B
	ChunkVertexMaterialName  = 0x0000002C
	ChunkVertexMaterialInfo  = 0x0000002D
	ChunkVertexMapperArgs0   = 0x0000002E
	ChunkVertexMapperArgs1   = 0x0000002F
	ChunkTextures            = 0x00000030
	ChunkTexture             = 0x00000031
	ChunkTextureName         = 0x00000032
	ChunkTextureInfo         = 0x00000033
	ChunkMaterialPass        = 0x00000038
	ChunkVertexMaterialIDs   = 0x00000039
	ChunkShaderIDs           = 0x0000003A
	ChunkDCG                 = 0x0000003B
	ChunkDIG                 = 0x0000003C
	ChunkSCG                 = 0x0000003E
	ChunkShaderMaterialID    = 0x0000003F
	ChunkTextureStage        = 0x00000048
	ChunkTextureIDs          = 0x00000049
	ChunkStageTexCoords      = 0x0000004A
	ChunkPerFaceTexCoordIDs  = 0x0000004B
	ChunkShaderMaterials     = 0x00000050
	ChunkShaderMaterial      = 0x00000051
	ChunkShaderMaterialHdr   = 0x00000052
	ChunkShaderMaterialProp  = 0x00000053
	ChunkDeform              = 0x00000058
	ChunkTangents            = 0x00000060
	ChunkBitangents          = 0x00000061
	ChunkPS2Shaders          = 0x00000080
	ChunkAABBTree            = 0x00000090
	ChunkAABBTreeHeader      = 0x00000091
	ChunkAABBTreePolyIndices = 0x00000092
	ChunkAABBTreeNodes       = 0x00000093
	ChunkVertices2           = 0x00000C00
	ChunkNormals2            = 0x00000C01
)

// inside ChunkHierarchy
const (
	ChunkHierarchyHeader = 0x00000101
	ChunkPivots          = 0x00000102
	ChunkPivotFixups     = 0x00000103
)

// inside ChunkAnimation and ChunkCompressedAnimation
const (
	ChunkAnimationHeader     = 0x00000201
	ChunkAnimationChannel    = 0x00000202
	ChunkAnimationBitChannel = 0x00000203

	ChunkCompressedAnimationHeader  = 0x00000281
	ChunkCompressedAnimationChannel = 0x00000282
	ChunkCompressedBitChannel       = 0x00000283
	ChunkCompressedMotionChannel    = 0x00000284
)

// inside ChunkHLod
const (
	ChunkHLodHeader         = 0x00000701
	ChunkHLodLodArray       = 0x00000702
	ChunkHLodSubObjectArray = 0x00000703
	ChunkHLodSubObject      = 0x00000704
	ChunkHLodAggregateArray = 0x00000705
	ChunkHLodProxyArray     = 0x00000706
)

// inside ChunkDazzle
const (
	ChunkDazzleName     = 0x00000901
	ChunkDazzleTypeName = 0x00000902
)

// Chunk types that are documented but not decoded. They are skipped like unknown
// chunks but only reported at Info level, each in the context it belongs to.
var (
	topLevelUnsupported = []uint32{
		ChunkMorphAnimation,
		ChunkHModel,
		ChunkLODModel,
		ChunkCollection,
		ChunkPoints,
		ChunkLight,
		ChunkEmitter,
		ChunkAggregate,
		ChunkNullObject,
		ChunkLightscape,
		ChunkSoundRObj,
	}
	meshUnsupported = []uint32{
		ChunkVertices2,
		ChunkNormals2,
		ChunkTangents,
		ChunkBitangents,
		ChunkDeform,
		ChunkPS2Shaders,
	}
)

var chunkNames = map[uint32]string{
	ChunkMesh:                       "MESH",
	ChunkHierarchy:                  "HIERARCHY",
	ChunkAnimation:                  "ANIMATION",
	ChunkCompressedAnimation:        "COMPRESSED_ANIMATION",
	ChunkMorphAnimation:             "MORPH_ANIMATION",
	ChunkHModel:                     "HMODEL",
	ChunkLODModel:                   "LODMODEL",
	ChunkCollection:                 "COLLECTION",
	ChunkPoints:                     "POINTS",
	ChunkLight:                      "LIGHT",
	ChunkEmitter:                    "EMITTER",
	ChunkAggregate:                  "AGGREGATE",
	ChunkHLod:                       "HLOD",
	ChunkBox:                        "BOX",
	ChunkNullObject:                 "NULL_OBJECT",
	ChunkLightscape:                 "LIGHTSCAPE",
	ChunkDazzle:                     "DAZZLE",
	ChunkSoundRObj:                  "SOUNDROBJ",
	ChunkVertices:                   "VERTICES",
	ChunkVertexNormals:              "VERTEX_NORMALS",
	ChunkMeshUserText:               "MESH_USER_TEXT",
	ChunkVertexInfluences:           "VERTEX_INFLUENCES",
	ChunkMeshHeader:                 "MESH_HEADER3",
	ChunkTriangles:                  "TRIANGLES",
	ChunkVertexShadeIndices:         "VERTEX_SHADE_INDICES",
	ChunkPrelitUnlit:                "PRELIT_UNLIT",
	ChunkPrelitVertex:               "PRELIT_VERTEX",
	ChunkPrelitLightmapMPass:        "PRELIT_LIGHTMAP_MULTI_PASS",
	ChunkPrelitLightmapMTex:         "PRELIT_LIGHTMAP_MULTI_TEXTURE",
	ChunkMaterialInfo:               "MATERIAL_INFO",
	ChunkShaders:                    "SHADERS",
	ChunkVertexMaterials:            "VERTEX_MATERIALS",
	ChunkVertexMaterial:             "VERTEX_MATERIAL",
	ChunkVertexMaterialName:         "VERTEX_MATERIAL_NAME",
	ChunkVertexMaterialInfo:         "VERTEX_MATERIAL_INFO",
	ChunkVertexMapperArgs0:          "VERTEX_MAPPER_ARGS0",
	ChunkVertexMapperArgs1:          "VERTEX_MAPPER_ARGS1",
	ChunkTextures:                   "TEXTURES",
	ChunkTexture:                    "TEXTURE",
	ChunkTextureName:                "TEXTURE_NAME",
	ChunkTextureInfo:                "TEXTURE_INFO",
	ChunkMaterialPass:               "MATERIAL_PASS",
	ChunkVertexMaterialIDs:          "VERTEX_MATERIAL_IDS",
	ChunkShaderIDs:                  "SHADER_IDS",
	ChunkDCG:                        "DCG",
	ChunkDIG:                        "DIG",
	ChunkSCG:                        "SCG",
	ChunkShaderMaterialID:           "SHADER_MATERIAL_ID",
	ChunkTextureStage:               "TEXTURE_STAGE",
	ChunkTextureIDs:                 "TEXTURE_IDS",
	ChunkStageTexCoords:             "STAGE_TEXCOORDS",
	ChunkPerFaceTexCoordIDs:         "PER_FACE_TEXCOORD_IDS",
	ChunkShaderMaterials:            "SHADER_MATERIALS",
	ChunkShaderMaterial:             "SHADER_MATERIAL",
	ChunkShaderMaterialHdr:          "SHADER_MATERIAL_HEADER",
	ChunkShaderMaterialProp:         "SHADER_MATERIAL_PROPERTY",
	ChunkDeform:                     "DEFORM",
	ChunkTangents:                   "TANGENTS",
	ChunkBitangents:                 "BITANGENTS",
	ChunkPS2Shaders:                 "PS2_SHADERS",
	ChunkAABBTree:                   "AABBTREE",
	ChunkAABBTreeHeader:             "AABBTREE_HEADER",
	ChunkAABBTreePolyIndices:        "AABBTREE_POLYINDICES",
	ChunkAABBTreeNodes:              "AABBTREE_NODES",
	ChunkVertices2:                  "VERTICES_2",
	ChunkNormals2:                   "NORMALS_2",
	ChunkHierarchyHeader:            "HIERARCHY_HEADER",
	ChunkPivots:                     "PIVOTS",
	ChunkPivotFixups:                "PIVOT_FIXUPS",
	ChunkAnimationHeader:            "ANIMATION_HEADER",
	ChunkAnimationChannel:           "ANIMATION_CHANNEL",
	ChunkAnimationBitChannel:        "BIT_CHANNEL",
	ChunkCompressedAnimationHeader:  "COMPRESSED_ANIMATION_HEADER",
	ChunkCompressedAnimationChannel: "COMPRESSED_ANIMATION_CHANNEL",
	ChunkCompressedBitChannel:       "COMPRESSED_BIT_CHANNEL",
	ChunkCompressedMotionChannel:    "COMPRESSED_ANIMATION_MOTION_CHANNEL",
	ChunkHLodHeader:                 "HLOD_HEADER",
	ChunkHLodLodArray:               "HLOD_LOD_ARRAY",
	ChunkHLodSubObjectArray:         "HLOD_SUB_OBJECT_ARRAY_HEADER",
	ChunkHLodSubObject:              "HLOD_SUB_OBJECT",
	ChunkHLodAggregateArray:         "HLOD_AGGREGATE_ARRAY",
	ChunkHLodProxyArray:             "HLOD_PROXY_ARRAY",
	ChunkDazzleName:                 "DAZZLE_NAME",
	ChunkDazzleTypeName:             "DAZZLE_TYPENAME",
}

// ChunkName returns the W3D name of a chunk type or its hex value if unknown.
func ChunkName(tag uint32) string {
	if n, ok := chunkNames[tag]; ok {
		return n
	}
	return fmt.Sprintf("0x%08X", tag)
}
