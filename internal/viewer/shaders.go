package viewer

// TerrainVertexShader transforms terrain vertices and forwards the
// per-vertex blended layer color.
const TerrainVertexShader = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec4 aColor;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec4 vColor;

void main() {
    vNormal = aNormal;
    vColor = aColor;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

// TerrainFragmentShader lights the terrain with a single directional
// light plus a constant ambient term.
const TerrainFragmentShader = `#version 410 core

in vec3 vNormal;
in vec4 vColor;

uniform vec3 uLightDir;
uniform float uAmbient;

out vec4 fragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
    vec3 lit = vColor.rgb * min(uAmbient + diffuse, 1.0);
    fragColor = vec4(lit, vColor.a);
}
`
