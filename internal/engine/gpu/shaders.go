package gpu

// phongVertexShader transforms positions and normals into world space.
const phongVertexShader = `#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_proj;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
	vec4 world = u_model * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(u_model) * aNormal;
	gl_Position = u_proj * u_view * world;
}
`

// phongFragmentShader mirrors lighting.Phong, including the pi*d^2
// falloff and the minimum light distance.
const phongFragmentShader = `#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 u_objColor;
uniform vec3 u_specColor;
uniform vec3 u_lightPos;
uniform vec3 u_lightColor;
uniform float u_lightIntensity;
uniform vec3 u_ambient;
uniform vec3 u_camPos;
uniform float u_ka;
uniform float u_kd;
uniform float u_ks;
uniform float u_ke;

out vec4 FragColor;

const float PI = 3.14159265358979;
const float MIN_LIGHT_DISTANCE = 1e-4;

void main() {
	vec3 n = normalize(vNormal);
	vec3 v = normalize(u_camPos - vWorldPos);
	vec3 toLight = u_lightPos - vWorldPos;
	float d = max(length(toLight), MIN_LIGHT_DISTANCE);
	vec3 l = toLight / d;
	float falloff = u_lightIntensity / (PI * d * d);

	vec3 ambient = u_ambient * u_ka * u_objColor;
	vec3 diffuse = max(dot(n, l), 0.0) * u_kd * falloff * u_lightColor * u_objColor;
	vec3 r = -l + 2.0 * dot(l, n) * n;
	vec3 specular = pow(max(dot(v, r), 0.0), u_ke) * u_ks * falloff * u_lightColor * u_specColor;

	FragColor = vec4(ambient + diffuse + specular, 1.0);
}
`

// lineVertexShader draws world-space polylines.
const lineVertexShader = `#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 u_view;
uniform mat4 u_proj;

void main() {
	gl_Position = u_proj * u_view * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `#version 410 core

uniform vec3 u_color;

out vec4 FragColor;

void main() {
	FragColor = vec4(u_color, 1.0);
}
`
