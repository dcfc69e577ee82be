package chrome

// Every script is a function declaration called with `this` bound to the
// element handle.

const scriptAttribute = `function(name) {
	return {ok: this.hasAttribute(name), value: this.getAttribute(name) || ""};
}`

const scriptSetAttribute = `function(name, value) {
	this.setAttribute(name, value);
}`

const scriptClassList = `function() {
	return Array.from(this.classList || []);
}`

const scriptTextContent = `function() {
	return this.textContent || "";
}`

const scriptSetTextContent = `function(text) {
	this.textContent = text;
}`

const scriptParent = `function() {
	return this.parentElement;
}`

const scriptQueryAll = `function(selector) {
	return Array.from(this.querySelectorAll(selector));
}`

const scriptLength = `function() {
	return this.length;
}`

const scriptIndex = `function(index) {
	return this[index];
}`

const scriptMetrics = `function() {
	const rect = this.getBoundingClientRect();
	return {
		offsetWidth: this.offsetWidth || 0,
		clientWidth: this.clientWidth || 0,
		scrollWidth: this.scrollWidth || 0,
		rect: {x: rect.x, y: rect.y, width: rect.width, height: rect.height},
	};
}`

const scriptComputedStyle = `function(property) {
	return window.getComputedStyle(this).getPropertyValue(property);
}`

const scriptSetStyle = `function(property, value) {
	if (value === "") {
		this.style.removeProperty(property);
	} else {
		this.style.setProperty(property, value);
	}
}`

// The text is laid out in a hidden copy with the element's width and font,
// characters are grouped by the top of their line box.
const scriptVisualLines = `function() {
	const text = this.textContent;
	const style = window.getComputedStyle(this);

	const temp = document.createElement("div");
	temp.style.position = "absolute";
	temp.style.visibility = "hidden";
	temp.style.width = style.width;
	temp.style.font = style.font;
	temp.style.whiteSpace = "pre-wrap";
	temp.textContent = text;
	document.body.appendChild(temp);

	const lines = [];
	const node = temp.firstChild;
	let top = null;
	let line = "";
	let offset = 0;

	for (const char of Array.from(text)) {
		const range = document.createRange();
		range.setStart(node, offset);
		range.setEnd(node, offset + char.length);
		const rect = range.getBoundingClientRect();

		if (top !== null && rect.top !== top) {
			lines.push(line);
			line = "";
		}

		top = rect.top;
		line += char;
		offset += char.length;
	}

	if (line) {
		lines.push(line);
	}

	document.body.removeChild(temp);

	return lines;
}`

const scriptWrapLines = `function(lines) {
	this.innerHTML = "";
	for (const line of lines) {
		const span = document.createElement("span");
		span.textContent = line;
		this.appendChild(span);
	}
	return Array.from(this.children);
}`

const scriptAppendHTML = `function(markup) {
	const template = document.createElement("template");
	template.innerHTML = markup;
	this.appendChild(template.content);
}`

// Clips the page to the viewport so overflowing content never stretches
// the screenshot.
const ScriptHideOverflow = `(function() {
	document.documentElement.style.overflow = "hidden";
	if (document.body) {
		document.body.style.overflow = "hidden";
	}
})()`
