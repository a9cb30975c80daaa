package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>FocoTour</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#0f9b8e,#f7b733); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
header { padding: 60px 20px 20px; text-align: center; }
button { margin: 10px; padding: 12px 24px; font-size: 16px; border: none; border-radius: 4px; cursor: pointer; background: rgba(255,255,255,0.2); color: #fff; }
button:hover { background: rgba(255,255,255,0.4); }
#testimonial { max-width: 640px; margin: 20px auto; padding: 20px; background: rgba(0,0,0,0.25); border-radius: 8px; }
#testimonial img { width: 64px; height: 64px; border-radius: 50%; object-fit: cover; }
.modal { display: none; position: fixed; top: 0; left: 0; width: 100%; height: 100%; background: rgba(0,0,0,0.5); justify-content: center; align-items: center; }
.modal-content { background: #fff; color: #333; padding: 24px; border-radius: 8px; width: 90%; max-width: 420px; }
.close { float: right; cursor: pointer; font-size: 20px; }
.field-error { color: #c0392b; font-size: 13px; min-height: 16px; }
input { width: 100%; padding: 10px; margin: 8px 0 0; border: 1px solid #ccc; border-radius: 4px; box-sizing: border-box; }
footer { margin-top: auto; text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<header>
  <h1>FocoTour</h1>
  <p>Descubre el Atlántico y planea tu ruta.</p>
  <button onclick="openModal('login')">Login</button>
  <button onclick="openModal('register')">Register</button>
</header>
<section id="testimonial"></section>
<div style="text-align:center">
  <button onclick="showSlide(current - 1)">&lsaquo;</button>
  <button onclick="showSlide(current + 1)">&rsaquo;</button>
</div>
<div id="modal" class="modal">
  <div class="modal-content">
    <span class="close" onclick="closeModal()">&times;</span>
    <div id="forms"></div>
  </div>
</div>
<footer>FocoTour API</footer>
<script>
const forms = {
  login: '<h2>Login</h2><form onsubmit="return submitAuth(event, \'/api/v1/auth/login\')">' +
    '<input type="email" name="email" placeholder="Email" /><div class="field-error" id="loginEmailError"></div>' +
    '<input type="password" name="password" placeholder="Password" /><div class="field-error" id="loginPasswordError"></div>' +
    '<button type="submit">Login</button></form>',
  register: '<h2>Register</h2><form onsubmit="return submitAuth(event, \'/api/v1/auth/register\')">' +
    '<input name="name" placeholder="Name" /><div class="field-error" id="registerNameError"></div>' +
    '<input type="email" name="email" placeholder="Email" /><div class="field-error" id="registerEmailError"></div>' +
    '<input type="password" name="password" placeholder="Password" /><div class="field-error" id="registerPasswordError"></div>' +
    '<input type="password" name="confirm_password" placeholder="Confirm password" /><div class="field-error" id="confirmPasswordError"></div>' +
    '<button type="submit">Register</button></form>'
};
let current = 0;

function openModal(type) {
  document.getElementById('forms').innerHTML = forms[type];
  document.getElementById('modal').style.display = 'flex';
}
function closeModal() {
  document.getElementById('modal').style.display = 'none';
}
async function submitAuth(event, url) {
  event.preventDefault();
  document.querySelectorAll('.field-error').forEach(el => el.textContent = '');
  const form = new FormData(event.target);
  const response = await fetch(url, {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(Object.fromEntries(form.entries()))
  });
  const data = await response.json();
  if (response.ok) {
    localStorage.setItem('authToken', data.token);
    localStorage.setItem('userData', JSON.stringify(data.user));
    window.location.href = data.redirect;
    return false;
  }
  if (data.fields) {
    Object.entries(data.fields).forEach(([id, msg]) => {
      const el = document.getElementById(id);
      if (el) el.textContent = msg;
    });
  } else {
    alert(data.error || 'Authentication failed');
  }
  return false;
}
async function showSlide(index) {
  const response = await fetch('/api/v1/testimonials/' + index);
  if (!response.ok) return;
  const slide = await response.json();
  current = slide.index;
  const t = slide.testimonial;
  document.getElementById('testimonial').innerHTML =
    '<img src="' + t.image + '" alt="" /><h3>' + t.name + '</h3><em>' + t.role + '</em><p>' + t.content + '</p>';
}
showSlide(0);
</script>
</body>
</html>`

// RegisterPages serves the landing page. The client routes a login
// redirects to are forwarded to frontendURL when one is configured.
func RegisterPages(e *echo.Echo, frontendURL string) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})

	base := strings.TrimRight(frontendURL, "/")
	for _, path := range []string{"/dashboard", "/interests", "/admin"} {
		path := path
		e.GET(path, func(c echo.Context) error {
			if base != "" {
				return c.Redirect(http.StatusTemporaryRedirect, base+path)
			}
			return c.HTML(http.StatusOK, "<h1>FocoTour</h1><p>This view is served by the FocoTour web client.</p>")
		})
	}
}
